package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// Render produces the diagnostic rendering of a raw input value so failure
// messages stay actionable. Scalars render JSON-style (null, true, "abc"),
// non-finite floats render as NaN / Infinity, and composites are serialized
// best-effort via go-json.
func Render(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case absentValue:
		return t.String()
	case invalidValue:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		return strconv.Quote(t)
	case json.Number:
		return t.String()
	case float64:
		return renderFloat(t)
	case float32:
		return renderFloat(float64(t))
	}
	if b, err := gojson.Marshal(v); err == nil {
		return string(b)
	}
	// Values go-json cannot serialize (NaN inside a map, sentinel markers,
	// channels) still get a readable fallback.
	return fmt.Sprintf("%v", v)
}

func renderFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
