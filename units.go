package docfrag

import (
	"fmt"
	"strconv"
	"strings"
)

// centimetersPerInch is the exact definition of the inch.
const centimetersPerInch = 2.54

// InchesFromCentimeters converts a length in centimeters to inches.
func InchesFromCentimeters(cm float64) float64 {
	return cm / centimetersPerInch
}

// CentimetersFromInches converts a length in inches to centimeters.
func CentimetersFromInches(in float64) float64 {
	return in * centimetersPerInch
}

// Inches converts a dynamically typed length in centimeters to inches.  It
// accepts any numeric value or a string that parses as a number; anything
// else returns an InvalidArgumentError.  Callers holding a float64 should use
// InchesFromCentimeters directly.
func Inches(v interface{}) (float64, error) {
	if cm, ok := asFloat(v); ok {
		return InchesFromCentimeters(cm), nil
	}
	if s, ok := v.(string); ok {
		cm, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, NewInvalidArgumentError("length", fmt.Sprintf("%q is not numeric", s))
		}
		return InchesFromCentimeters(cm), nil
	}
	return 0, NewInvalidArgumentError("length", fmt.Sprintf("%T is not numeric", v))
}

// asFloat returns v as a float64 when its dynamic type is one of the numeric
// kinds.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
