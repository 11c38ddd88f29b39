package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/MKhiriev/go-io-gate/internal/converter"
	"github.com/MKhiriev/go-io-gate/internal/logger"
	"github.com/MKhiriev/go-io-gate/internal/service"
	"github.com/MKhiriev/go-io-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFacade wires the router to a real IOService over one input "temp" and
// one integer output "setpoint".
func newFacade(t *testing.T) (http.Handler, *models.Input, *models.Output) {
	t.Helper()

	temp := models.NewInput("temp", func(value, timestamp any) (string, error) {
		return fmt.Sprintf("%vC@%v", value, timestamp), nil
	})
	setpoint := models.NewOutput("setpoint", converter.ParseInteger)

	services := service.NewServices(
		models.NewInputRegistry([]*models.Input{temp}),
		models.NewOutputRegistry([]*models.Output{setpoint}),
		logger.Nop(),
	)
	h, err := NewHandler(services, Settings{}, logger.Nop())
	require.NoError(t, err)

	return h.Init(), temp, setpoint
}

func TestFacade_ReadInputWithCustomConverter(t *testing.T) {
	router, temp, _ := newFacade(t)
	temp.Set(21.5, 100)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/temp", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "21.5C@100", rr.Body.String())
}

func TestFacade_ChunkedBodyIsConcatenated(t *testing.T) {
	router, _, setpoint := newFacade(t)

	// the body arrives one byte per read: "2" then "5"
	req := httptest.NewRequest(http.MethodPost, "/setpoint", iotest.OneByteReader(strings.NewReader("25")))
	rr := serve(router, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, int64(25), setpoint.Value())
}

func TestFacade_UnknownEntries(t *testing.T) {
	router, _, _ := newFacade(t)

	tests := []struct {
		method string
		target string
	}{
		{method: http.MethodGet, target: "/unknown"},
		{method: http.MethodGet, target: "/setpoint"},
		{method: http.MethodPost, target: "/temp"},
		{method: http.MethodPost, target: "/unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := serve(router, httptest.NewRequest(tt.method, tt.target, strings.NewReader("1")))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Empty(t, rr.Body.String())
		})
	}
}

func TestFacade_WriteThenReadBack(t *testing.T) {
	router, _, setpoint := newFacade(t)

	for _, body := range []string{"1", "42.9", "abc"} {
		rr := serve(router, httptest.NewRequest(http.MethodPost, "/setpoint", strings.NewReader(body)))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	// last write wins; "abc" has no numeric prefix
	got, ok := setpoint.Value().(float64)
	require.True(t, ok)
	assert.NotEqual(t, got, got, "expected NaN")
}
