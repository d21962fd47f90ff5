package conditional

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/formpress/formpress/field"
	"github.com/formpress/formpress/template"
)

// shorthandRe matches a render value that is exactly one bare reference, with
// no surrounding text. Such values forward the referenced data value with its
// original type, so a boolean passes straight through to checkbox rendering.
var shorthandRe = regexp.MustCompile(`^\{\s*([A-Za-z0-9_][A-Za-z0-9_.-]*)\s*\}$`)

type kind int

const (
	kindText    kind = iota
	kindBool         // native boolean forwarded via shorthand
	kindLiteral      // backslash-escaped text, never a boolean keyword
)

// Value is the tagged result of resolving a conditional field: either literal
// text or a boolean keyword. Keeping the distinction explicit means the render
// site never re-parses strings to decide between the two.
type Value struct {
	kind kind
	b    bool
	text string
}

// TextValue wraps plain resolved text.
func TextValue(s string) Value { return Value{kind: kindText, text: s} }

// BoolValue wraps a forwarded native boolean.
func BoolValue(b bool) Value { return Value{kind: kindBool, b: b} }

// LiteralValue wraps escaped text that must never be coerced to a boolean.
func LiteralValue(s string) Value { return Value{kind: kindLiteral, text: s} }

// IsBool reports whether the value carries a native boolean.
func (v Value) IsBool() bool { return v.kind == kindBool }

// Bool returns the boolean payload; false for text values.
func (v Value) Bool() bool { return v.kind == kindBool && v.b }

// Text returns the value as display text.
func (v Value) Text() string {
	if v.kind == kindBool {
		return strconv.FormatBool(v.b)
	}
	return v.text
}

// Raw returns the value with its native type: bool for forwarded booleans,
// string otherwise. This is what gets fed back into the data object so other
// templates can reference the computed value.
func (v Value) Raw() any {
	if v.kind == kindBool {
		return v.b
	}
	return v.text
}

// renderFormatting substitutes references and nothing else. Branch render
// text is the author's literal prose; the smart separator cleanup and
// whitespace normalization belong to composite fields and would strip
// punctuation the author wrote around a placeholder.
var renderFormatting = field.Formatting{
	EmptyValueBehavior: field.EmptySkip,
	SeparatorHandling:  field.SeparatorLiteral,
	WhitespaceHandling: field.WhitespacePreserve,
}

// Checkbox keyword sets for coercion.
var (
	trueWords  = map[string]bool{"true": true, "checked": true, "yes": true, "1": true}
	falseWords = map[string]bool{"false": true, "unchecked": true, "no": true, "0": true, "": true}
)

// Resolve walks the field's branches in order, takes the first matching
// branch's render value (falling back to the default), and resolves it
// through the shorthand/template rules. The result is a boolean Value when
// conditionalRenderAs is "checkbox" and a text Value otherwise.
//
// Resolve is total: it returns a Value for any well-formed field and reports
// ambiguities as diagnostics instead of failing. Missing data resolves to
// empty text or false.
func Resolve(f *field.Field, data map[string]any) (Value, []string) {
	var diags []string

	raw, matched := "", false
	for _, br := range f.ConditionalBranches {
		fv, _ := field.Lookup(data, br.Condition.Field)
		if Evaluate(br.Condition.Operator, fv, br.Condition.Value) {
			raw = br.RenderValue
			matched = true
			break
		}
	}
	if !matched {
		raw = f.ConditionalDefaultValue
	}

	v := resolveText(raw, data)

	// An empty result falls back to the default, resolved the same way.
	if !v.IsBool() && v.Text() == "" && f.ConditionalDefaultValue != "" && raw != f.ConditionalDefaultValue {
		v = resolveText(f.ConditionalDefaultValue, data)
	}

	if f.ConditionalRenderAs == field.ConditionalRenderCheckbox {
		return coerceCheckbox(f.Key, v, &diags), diags
	}
	// Text mode always yields a string, even for a forwarded boolean.
	return TextValue(v.Text()), diags
}

// resolveText turns a branch render value into a Value: escaped text stays
// literal, a bare {key} forwards the referenced value with its type, text
// containing braces runs through the template engine, and anything else
// passes through unchanged.
func resolveText(text string, data map[string]any) Value {
	if strings.HasPrefix(text, `\`) {
		return LiteralValue(text[1:])
	}
	if m := shorthandRe.FindStringSubmatch(text); m != nil {
		v, ok := field.Lookup(data, m[1])
		if !ok {
			return TextValue("")
		}
		if b, isBool := v.(bool); isBool {
			return BoolValue(b)
		}
		return TextValue(field.Stringify(v))
	}
	if strings.ContainsAny(text, "{}") {
		return TextValue(template.Evaluate(text, data, renderFormatting))
	}
	return TextValue(text)
}

// coerceCheckbox turns a resolved Value into a boolean Value. Native booleans
// pass through; literal text is always unchecked; otherwise the trimmed,
// lowercased text must be one of the known keywords. Anything else is
// unchecked with a diagnostic.
func coerceCheckbox(key string, v Value, diags *[]string) Value {
	if v.kind == kindBool {
		return v
	}
	if v.kind == kindLiteral {
		return BoolValue(false)
	}
	s := strings.ToLower(strings.TrimSpace(v.text))
	switch {
	case trueWords[s]:
		return BoolValue(true)
	case falseWords[s]:
		return BoolValue(false)
	default:
		*diags = append(*diags, fmt.Sprintf(
			"conditional: field %q: ambiguous checkbox value %q, treating as unchecked", key, v.text))
		return BoolValue(false)
	}
}
