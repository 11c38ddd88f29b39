// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package converter

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// Names of the built-in converters accepted in configuration.
const (
	String  = "string"
	Float   = "float"
	Integer = "integer"
	Boolean = "boolean"
)

const infinity = "Infinity"

// ToString is the default input converter. The timestamp is ignored.
//
// An untyped nil (a value that was never set) becomes "undefined", a typed
// nil pointer, map, slice, channel, func or interface becomes "null" and
// every other value uses its native string form.
func ToString(value, _ any) (string, error) {
	return stringify(value), nil
}

func stringify(value any) string {
	if value == nil {
		return "undefined"
	}

	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		if isNil(value) {
			return "null"
		}
		return v.String()
	case error:
		if isNil(value) {
			return "null"
		}
		return v.Error()
	}

	if isNil(value) {
		return "null"
	}

	return fmt.Sprint(value)
}

func isNil(value any) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Identity is the default output converter: the raw body is stored as is.
func Identity(raw string) (any, error) {
	return raw, nil
}

// ParseFloat parses the longest floating-point prefix of raw after leading
// whitespace. A body without a numeric prefix yields NaN.
func ParseFloat(raw string) (any, error) {
	return parseFloatPrefix(raw), nil
}

// ParseInteger parses the leading integer of raw after leading whitespace,
// truncating any fractional part ("42.9" is 42). A "0x" prefix selects base 16.
//
// The result is an int64, or a float64 when there is no numeric prefix (NaN)
// or the number does not fit into 64 bits.
func ParseInteger(raw string) (any, error) {
	return parseIntegerPrefix(raw), nil
}

// ParseBoolean reports true for the trimmed, case-sensitive values "true",
// "1", "yes" and "on". Everything else is false.
func ParseBoolean(raw string) (any, error) {
	switch strings.TrimSpace(raw) {
	case "true", "1", "yes", "on":
		return true, nil
	default:
		return false, nil
	}
}

func parseFloatPrefix(raw string) float64 {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	n := floatPrefixLen(s)
	if n == 0 {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}

	return f
}

// floatPrefixLen returns the length of the longest prefix of s that forms a
// decimal floating-point literal, or zero if there is none.
func floatPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if strings.HasPrefix(s[i:], infinity) {
		return i + len(infinity)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		fraction := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			fraction++
		}
		if digits+fraction > 0 {
			i = j
			digits += fraction
		}
	}
	if digits == 0 {
		return 0
	}

	// exponent counts only when followed by at least one digit
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}

	return i
}

func parseIntegerPrefix(raw string) any {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	sign := ""
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}

	base := 10
	accept := isDigit
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		accept = isHexDigit
		s = s[2:]
	}

	n := 0
	for n < len(s) && accept(s[n]) {
		n++
	}
	if n == 0 {
		return math.NaN()
	}

	i, err := strconv.ParseInt(sign+s[:n], base, 64)
	if err == nil {
		return i
	}

	// out of int64 range: keep the magnitude as a float
	f := 0.0
	for k := 0; k < n; k++ {
		f = f*float64(base) + float64(digitValue(s[k]))
	}
	if sign == "-" {
		f = -f
	}
	return f
}

func digitValue(c byte) int {
	switch {
	case isDigit(c):
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
