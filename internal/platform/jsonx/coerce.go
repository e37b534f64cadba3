package jsonx

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	floatPrefix = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^\s*[+-]?\d+`)
)

// ToFloat coerces a loosely typed value into a number. Strings contribute
// their leading numeric prefix ("12.5 EUR" is 12.5). Booleans, nil and
// strings without a numeric prefix are rejected.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		m := floatPrefix.FindString(n)
		if m == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// ToInt coerces a loosely typed value into an integer, truncating fractions
// toward zero. Strings contribute their leading integer prefix.
func ToInt(v any) (int, bool) {
	switch n := v.(type) {
	case string:
		m := intPrefix.FindString(n)
		if m == "" {
			return 0, false
		}
		i, err := strconv.Atoi(strings.TrimSpace(m))
		return i, err == nil
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		f, ok := ToFloat(v)
		if !ok || math.IsNaN(f) || math.Abs(f) > math.MaxInt32 {
			return 0, false
		}
		return int(math.Trunc(f)), true
	}
}

// Loose is a number field that tolerates corrupted stored values: numeric
// strings are parsed, anything else reads as zero instead of failing the
// enclosing document.
type Loose float64

func (l *Loose) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = 0
		return nil
	}
	f, ok := ToFloat(raw)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		*l = 0
		return nil
	}
	*l = Loose(f)
	return nil
}

func (l Loose) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(l))
}

// Int truncates toward zero.
func (l Loose) Int() int {
	return int(math.Trunc(float64(l)))
}
