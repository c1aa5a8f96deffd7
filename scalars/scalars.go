// Package scalars provides the built-in leaf descriptors: Int, Float,
// String, Boolean, ID and DateTime. Parsers are strict: values of the wrong
// dynamic type are rejected rather than converted, and booleans are never
// treated as numbers.
package scalars

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gqlkit/coerce"
)

// Int accepts integral numbers within the 32-bit signed range.
var Int = &coerce.Scalar{Name: "Int", JSONType: "integer", ParseValue: parseInt}

// Float accepts finite numbers.
var Float = &coerce.Scalar{Name: "Float", JSONType: "number", ParseValue: parseFloat}

// String accepts strings only.
var String = &coerce.Scalar{Name: "String", JSONType: "string", ParseValue: parseString}

// Boolean accepts booleans only.
var Boolean = &coerce.Scalar{Name: "Boolean", JSONType: "boolean", ParseValue: parseBoolean}

// ID accepts strings and integral numbers; both coerce to a string.
var ID = &coerce.Scalar{Name: "ID", JSONType: "string", ParseValue: parseID}

// DateTime accepts RFC3339 strings and yields time.Time.
var DateTime = &coerce.Scalar{Name: "DateTime", JSONType: "string", JSONFormat: "date-time", ParseValue: parseDateTime}

const (
	maxInt32 = 1<<31 - 1
	minInt32 = -1 << 31
)

func parseInt(_ context.Context, v any) (any, error) {
	var n int64
	switch t := v.(type) {
	case int:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) || t != math.Trunc(t) {
			return nil, fmt.Errorf("Int cannot represent non-integer value: %s", coerce.Render(v))
		}
		if t > maxInt32 || t < minInt32 {
			return nil, fmt.Errorf("Int cannot represent non 32-bit signed integer value: %s", coerce.Render(v))
		}
		n = int64(t)
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			// Integral floats like "3.0" arrive here when decoding used
			// UseNumber; treat them the same as the float64 arm does.
			f, ferr := t.Float64()
			if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
				return nil, fmt.Errorf("Int cannot represent non-integer value: %s", coerce.Render(v))
			}
			if f > maxInt32 || f < minInt32 {
				return nil, fmt.Errorf("Int cannot represent non 32-bit signed integer value: %s", coerce.Render(v))
			}
			i = int64(f)
		}
		n = i
	default:
		// bool deliberately falls through here
		return nil, fmt.Errorf("Int cannot represent non-integer value: %s", coerce.Render(v))
	}
	if n > maxInt32 || n < minInt32 {
		return nil, fmt.Errorf("Int cannot represent non 32-bit signed integer value: %s", coerce.Render(v))
	}
	return int(n), nil
}

func parseFloat(_ context.Context, v any) (any, error) {
	switch t := v.(type) {
	case int:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("Float cannot represent non numeric value: %s", coerce.Render(v))
		}
		return t, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("Float cannot represent non numeric value: %s", coerce.Render(v))
		}
		return f, nil
	}
	return nil, fmt.Errorf("Float cannot represent non numeric value: %s", coerce.Render(v))
}

func parseString(_ context.Context, v any) (any, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return nil, fmt.Errorf("String cannot represent a non string value: %s", coerce.Render(v))
}

func parseBoolean(_ context.Context, v any) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return nil, fmt.Errorf("Boolean cannot represent a non boolean value: %s", coerce.Render(v))
}

func parseID(_ context.Context, v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatInt(int64(t), 10), nil
		}
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return strconv.FormatInt(i, 10), nil
		}
	}
	return nil, fmt.Errorf("ID cannot represent value: %s", coerce.Render(v))
}

func parseDateTime(_ context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("DateTime cannot represent non-string value: %s", coerce.Render(v))
	}
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return nil, fmt.Errorf("DateTime cannot represent non-RFC3339 value: %s", coerce.Render(v))
	}
	return t, nil
}
