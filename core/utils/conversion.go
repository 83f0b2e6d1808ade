package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts a loosely typed JSON value to int.
// It handles standard integer types, floats and numeric strings; anything else is 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	default:
		return 0
	}
}

// ToString converts a loosely typed JSON value to string.
// Whole floats (how encoding/json decodes numbers into any) print without exponent,
// so 1000000 becomes "1000000" rather than "1e+06". nil becomes "".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FirstString returns val if it is a string, or the first string of a list.
// Character JSON allows a field such as image to be either.
func FirstString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				return s
			}
		}
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}
