package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

func coerceFloat(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case int:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	return f, !math.IsNaN(f)
}

// coerceScore clamps a numeric field to [lo, hi] and rounds it.
// Clamping happens before the int conversion so huge or infinite values cannot wrap.
func coerceScore(v any, lo, hi int) (int, bool) {
	f, ok := coerceFloat(v)
	if !ok {
		return 0, false
	}
	f = math.Max(float64(lo), math.Min(float64(hi), f))
	return int(math.Round(f)), true
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// coerceStringSlice accepts a JSON array or a single string and always returns a non-nil slice.
func coerceStringSlice(v any) []string {
	out := []string{}
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if s := coerceString(item); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, item := range val {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		if s := strings.TrimSpace(val); s != "" {
			out = append(out, s)
		}
	}
	return out
}
