package field

import (
	"strconv"
	"strings"
)

// SanitizeKey rewrites a candidate key to the allowed character set: letters,
// digits, underscore, and hyphen. Dots are preserved only when allowDots is
// set (composite reference paths); every other character becomes an
// underscore. An empty result falls back to "field".
func SanitizeKey(key string, allowDots bool) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '_' || r == '-':
			b.WriteRune(r)
		case r == '.' && allowDots:
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	out = strings.Trim(out, ".")
	if out == "" {
		return "field"
	}
	return out
}

// UniqueKey returns key unchanged if it is not already taken, otherwise the
// first free key_N suffix, counting from 1.
func UniqueKey(key string, taken map[string]bool) string {
	if !taken[key] {
		return key
	}
	for n := 1; ; n++ {
		candidate := key + "_" + strconv.Itoa(n)
		if !taken[candidate] {
			return candidate
		}
	}
}
