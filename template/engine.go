// Package template evaluates composite-field template strings.
//
// A template is plain text with {path} placeholders referencing other fields'
// values, e.g. "{firstName} {lastName}" or "{address.city}". A path may
// contain at most one dot, separating a base key from a nested or option key.
// Validation resolves every placeholder against the known field set;
// evaluation substitutes values from a data object and applies the field's
// formatting policies for empty values, separators, and whitespace.
//
// Evaluation is pure: the same (template, data, formatting) inputs always
// produce the same output.
package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/formpress/formpress/field"
)

var (
	placeholderRe = regexp.MustCompile(`\{([^{}]+)\}`)

	doubleCommaRe   = regexp.MustCompile(`,\s*,`)
	leadingCommaRe  = regexp.MustCompile(`^\s*,\s*`)
	trailingCommaRe = regexp.MustCompile(`\s*,\s*$`)
	multiSpaceRe    = regexp.MustCompile(`\s{2,}`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// Result is the outcome of validating a template against the known fields.
type Result struct {
	Valid        bool     `json:"isValid"`
	Dependencies []string `json:"dependencies"`
	Errors       []string `json:"errors,omitempty"`
}

// Validate scans tpl for {path} placeholders and resolves each against the
// given fields. A dependency resolves when its base key names a known field;
// dotted paths additionally resolve when the base names an options-variant
// field and the second segment is one of its option keys. Dependencies are
// de-duplicated in order of first appearance. An empty template is valid.
func Validate(tpl string, fields []field.Field) Result {
	known := make(map[string]*field.Field, len(fields))
	for i := range fields {
		known[fields[i].Key] = &fields[i]
	}

	res := Result{Valid: true, Dependencies: []string{}}
	seen := make(map[string]bool)

	for _, m := range placeholderRe.FindAllStringSubmatch(tpl, -1) {
		path := strings.TrimSpace(m[1])
		if seen[path] {
			continue
		}
		seen[path] = true

		if err := resolvePath(path, known); err != "" {
			res.Valid = false
			res.Errors = append(res.Errors, err)
			continue
		}
		res.Dependencies = append(res.Dependencies, path)
	}
	return res
}

// resolvePath returns an error message, or "" when the path resolves.
func resolvePath(path string, known map[string]*field.Field) string {
	if path == "" {
		return "empty reference {}"
	}
	segs := strings.Split(path, ".")
	if len(segs) > 2 {
		return fmt.Sprintf("reference %q has more than one dot", path)
	}

	f, ok := known[segs[0]]
	if !ok {
		return fmt.Sprintf("reference %q does not match any field", path)
	}
	if len(segs) == 2 && f.Variant == field.VariantOptions {
		for _, m := range f.OptionMappings {
			if m.Key == segs[1] {
				return ""
			}
		}
		return fmt.Sprintf("reference %q does not match an option of %q", path, segs[0])
	}
	return ""
}

// Evaluate substitutes every {path} in tpl with the value resolved from data
// and applies the formatting policies. Missing, null, and empty values render
// per EmptyValueBehavior; smart separator handling then collapses repeated
// commas, strips leading/trailing commas, and squeezes doubled spaces.
// show-empty suppresses the separator cleanup so the output keeps its shape.
func Evaluate(tpl string, data map[string]any, f field.Formatting) string {
	literal := f.SeparatorHandling == field.SeparatorLiteral ||
		f.EmptyValueBehavior == field.EmptyShowEmpty

	out := placeholderRe.ReplaceAllStringFunc(tpl, func(m string) string {
		path := strings.TrimSpace(m[1 : len(m)-1])
		v, ok := field.Lookup(data, path)
		if !ok || field.Empty(v) {
			if f.EmptyValueBehavior == field.EmptyPlaceholder {
				return "[" + path + "]"
			}
			return ""
		}
		return field.Stringify(v)
	})

	if !literal {
		out = cleanSeparators(out)
	}
	if f.WhitespaceHandling == field.WhitespaceNormalize {
		out = strings.TrimSpace(whitespaceRe.ReplaceAllString(out, " "))
	}
	return out
}

// cleanSeparators removes the comma debris left behind by skipped empty
// values: ",," runs, a leading or trailing comma, and doubled spaces.
func cleanSeparators(s string) string {
	for {
		next := doubleCommaRe.ReplaceAllString(s, ",")
		if next == s {
			break
		}
		s = next
	}
	s = leadingCommaRe.ReplaceAllString(s, "")
	s = trailingCommaRe.ReplaceAllString(s, "")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
