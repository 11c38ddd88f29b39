package influxdb

import (
	"context"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-io-gate/internal/converter"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

const (
	measurementOutput = "io_output"
	measurementInput  = "io_input"

	tagName    = "name"
	fieldValue = "value"
	fieldText  = "text"
)

// OutputWritten records a successful write to output name.
func (c *Client) OutputWritten(ctx context.Context, name string, value any) error {
	return c.writePoint(ctx, newPoint(measurementOutput, name, value, time.Now()))
}

// WriteInputSample records the value input name held at time at. The
// timestamp set by the owner is not exported.
func (c *Client) WriteInputSample(ctx context.Context, name string, value, _ any, at time.Time) error {
	return c.writePoint(ctx, newPoint(measurementInput, name, value, at))
}

func newPoint(measurement, name string, value any, at time.Time) *write.Point {
	return write.NewPoint(
		measurement,
		map[string]string{tagName: name},
		fields(value),
		at,
	)
}

// fields stores finite numbers in "value" and the string form of anything
// else in "text". Booleans count as 0 and 1.
func fields(value any) map[string]interface{} {
	if f, ok := number(value); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return map[string]interface{}{fieldValue: f}
	}

	text, _ := converter.ToString(value, nil)
	return map[string]interface{}{fieldText: text}
}

func number(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
