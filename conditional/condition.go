// Package conditional evaluates conditional fields: ordered condition →
// render-value branches compared against other fields' data, producing either
// a string (text rendering) or a boolean (checkbox rendering).
package conditional

import (
	"strconv"
	"strings"

	"github.com/formpress/formpress/field"
)

// Comparison operators.
const (
	OpEquals    = "equals"
	OpNotEquals = "not-equals"
	OpContains  = "contains"
	OpExists    = "exists"
	OpNotExists = "not-exists"
)

// Evaluate applies a comparison operator to a field value and a literal.
// Unknown operators evaluate to false; Evaluate never panics.
func Evaluate(operator string, fieldValue, compareValue any) bool {
	switch operator {
	case OpEquals:
		return looseEquals(fieldValue, compareValue)
	case OpNotEquals:
		return !looseEquals(fieldValue, compareValue)
	case OpContains:
		haystack := strings.ToLower(field.Stringify(fieldValue))
		needle := strings.ToLower(field.Stringify(compareValue))
		return strings.Contains(haystack, needle)
	case OpExists:
		return exists(fieldValue)
	case OpNotExists:
		return !exists(fieldValue)
	default:
		return false
	}
}

// exists reports whether the value is present: neither nil nor "".
func exists(v any) bool {
	if v == nil {
		return false
	}
	s, ok := v.(string)
	return !ok || s != ""
}

// looseEquals compares across JSON scalar types the way form data demands:
// 5 equals "5", true equals 1, and otherwise values compare by display string.
// Nil only equals nil.
func looseEquals(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if na, ok := toNumber(a); ok {
		if nb, ok := toNumber(b); ok {
			return na == nb
		}
	}
	return field.Stringify(a) == field.Stringify(b)
}

func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return n, err == nil
	default:
		return 0, false
	}
}
