package field

import (
	"strconv"
	"strings"
)

// Lookup resolves a dotted path against decoded JSON data, descending into
// nested objects one segment at a time. It returns false when any segment is
// missing or the current value is not an object.
func Lookup(data map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	var cur any = data
	for _, seg := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Empty reports whether a resolved value counts as missing for template and
// rendering purposes: nil or the empty string. A false boolean is not empty.
func Empty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// Stringify converts a decoded JSON value to its display string. Floats drop
// trailing zeros so JSON-decoded integers render as "5", not "5.000000".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = Stringify(e)
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// Truthy reports whether a value counts as checked for checkbox rendering.
// Accepted true forms: true, "true", 1, "1".
func Truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "1"
	case float64:
		return t == 1
	case int:
		return t == 1
	default:
		return false
	}
}
