package conditional

import (
	"testing"

	"github.com/formpress/formpress/field"
)

func branch(key, op string, value any, render string) field.Branch {
	return field.Branch{
		Condition:   field.Condition{Field: key, Operator: op, Value: value},
		RenderValue: render,
	}
}

func TestResolveFirstMatchingBranch(t *testing.T) {
	f := &field.Field{
		Key:  "status",
		Type: field.TypeConditional,
		ConditionalBranches: []field.Branch{
			branch("state", OpEquals, "CA", "California resident"),
			branch("state", OpExists, nil, "Out of state"),
		},
		ConditionalDefaultValue: "Unknown",
	}

	tests := []struct {
		name string
		data map[string]any
		want string
	}{
		{"first branch", map[string]any{"state": "CA"}, "California resident"},
		{"second branch", map[string]any{"state": "NY"}, "Out of state"},
		{"default", map[string]any{}, "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, diags := Resolve(f, tt.data)
			if len(diags) != 0 {
				t.Fatalf("unexpected diagnostics: %v", diags)
			}
			if v.IsBool() || v.Text() != tt.want {
				t.Fatalf("got %q (isBool=%v), want %q", v.Text(), v.IsBool(), tt.want)
			}
		})
	}
}

func TestResolveNoBranches(t *testing.T) {
	f := &field.Field{Key: "note", Type: field.TypeConditional, ConditionalDefaultValue: "n/a"}
	v, _ := Resolve(f, map[string]any{})
	if v.Text() != "n/a" {
		t.Fatalf("got %q, want n/a", v.Text())
	}

	empty := &field.Field{Key: "note", Type: field.TypeConditional}
	v, _ = Resolve(empty, map[string]any{})
	if v.Text() != "" {
		t.Fatalf("got %q, want empty", v.Text())
	}
}

func TestResolveShorthandForwardsBooleans(t *testing.T) {
	f := &field.Field{
		Key:                 "licensed",
		Type:                field.TypeConditional,
		ConditionalRenderAs: field.ConditionalRenderCheckbox,
		ConditionalBranches: []field.Branch{
			branch("hasLicense", OpExists, nil, "{hasLicense}"),
		},
	}
	v, diags := Resolve(f, map[string]any{"hasLicense": true})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !v.IsBool() || v.Bool() != true {
		t.Fatalf("got %#v, want native boolean true", v)
	}

	v, _ = Resolve(f, map[string]any{"hasLicense": false})
	if !v.IsBool() || v.Bool() {
		t.Fatalf("got %#v, want native boolean false", v)
	}
}

func TestResolveShorthandPreservesType(t *testing.T) {
	f := &field.Field{
		Key:  "echo",
		Type: field.TypeConditional,
		ConditionalBranches: []field.Branch{
			branch("src", OpExists, nil, "{src}"),
		},
	}
	// Text mode stringifies even a forwarded boolean.
	v, _ := Resolve(f, map[string]any{"src": true})
	if v.IsBool() || v.Text() != "true" {
		t.Fatalf("text mode got %#v, want string \"true\"", v)
	}

	v, _ = Resolve(f, map[string]any{"src": float64(42)})
	if v.Text() != "42" {
		t.Fatalf("got %q, want 42", v.Text())
	}
}

func TestResolveTemplateRenderValue(t *testing.T) {
	// Render text is substitution-only: punctuation and spacing the author
	// wrote around a placeholder survive, unlike composite-field cleanup.
	tests := []struct {
		name   string
		render string
		data   map[string]any
		want   string
	}{
		{"trailing comma", "Dear {name},", map[string]any{"name": "Ada"}, "Dear Ada,"},
		{"inner punctuation", "{city}, {state} -", map[string]any{"city": "Austin", "state": "TX"}, "Austin, TX -"},
		{"empty reference keeps shape", "Dear {name},", map[string]any{}, "Dear ,"},
		{"spacing preserved", "a  {x}  b", map[string]any{"x": "1"}, "a  1  b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &field.Field{
				Key:  "greeting",
				Type: field.TypeConditional,
				ConditionalBranches: []field.Branch{
					branch("always", OpNotExists, nil, tt.render),
				},
			}
			v, _ := Resolve(f, tt.data)
			if v.Text() != tt.want {
				t.Fatalf("got %q, want %q", v.Text(), tt.want)
			}
		})
	}
}

func TestResolveEmptyResultFallsBackToDefault(t *testing.T) {
	f := &field.Field{
		Key:  "label",
		Type: field.TypeConditional,
		ConditionalBranches: []field.Branch{
			branch("always", OpNotExists, nil, "{missingKey}"),
		},
		ConditionalDefaultValue: "fallback",
	}
	v, _ := Resolve(f, map[string]any{})
	if v.Text() != "fallback" {
		t.Fatalf("got %q, want fallback", v.Text())
	}
}

func TestCheckboxCoercionKeywords(t *testing.T) {
	tests := []struct {
		render    string
		want      bool
		wantDiags int
	}{
		{"true", true, 0},
		{"TRUE", true, 0},
		{"  Yes ", true, 0},
		{"checked", true, 0},
		{"1", true, 0},
		{"false", false, 0},
		{"Unchecked", false, 0},
		{"no", false, 0},
		{"0", false, 0},
		{"", false, 0},
		{"maybe", false, 1},
		{"2", false, 1},
		{"on", false, 1},
	}
	for _, tt := range tests {
		f := &field.Field{
			Key:                 "chk",
			Type:                field.TypeConditional,
			ConditionalRenderAs: field.ConditionalRenderCheckbox,
			ConditionalBranches: []field.Branch{
				branch("x", OpExists, nil, tt.render),
			},
		}
		v, diags := Resolve(f, map[string]any{"x": "present"})
		if !v.IsBool() {
			t.Fatalf("render %q: result not boolean", tt.render)
		}
		if v.Bool() != tt.want {
			t.Errorf("render %q: got %v, want %v", tt.render, v.Bool(), tt.want)
		}
		if len(diags) != tt.wantDiags {
			t.Errorf("render %q: diags = %v, want %d", tt.render, diags, tt.wantDiags)
		}
	}
}

func TestCheckboxCoercionTotality(t *testing.T) {
	// Any string input must yield a boolean without panicking.
	inputs := []string{"", " ", "true", "\\true", "{x}", "{missing}", "garbage",
		"TRUE ", "\tchecked\n", "0.0", "null", "undefined", "✓"}
	for _, in := range inputs {
		f := &field.Field{
			Key:                     "chk",
			Type:                    field.TypeConditional,
			ConditionalRenderAs:     field.ConditionalRenderCheckbox,
			ConditionalDefaultValue: "",
			ConditionalBranches: []field.Branch{
				branch("x", OpExists, nil, in),
			},
		}
		v, _ := Resolve(f, map[string]any{"x": "y"})
		if !v.IsBool() {
			t.Errorf("input %q: result is not boolean", in)
		}
	}
}

func TestEscapedLiteralNeverCoerces(t *testing.T) {
	f := &field.Field{
		Key:                 "chk",
		Type:                field.TypeConditional,
		ConditionalRenderAs: field.ConditionalRenderCheckbox,
		ConditionalBranches: []field.Branch{
			branch("x", OpExists, nil, `\true`),
		},
	}
	v, diags := Resolve(f, map[string]any{"x": "y"})
	if !v.IsBool() || v.Bool() {
		t.Fatalf("escaped \\true must resolve unchecked, got %#v", v)
	}
	if len(diags) != 0 {
		t.Fatalf("escaped literal should not produce diagnostics: %v", diags)
	}

	// In text mode the backslash is stripped and the literal text kept.
	txt := &field.Field{
		Key:  "lbl",
		Type: field.TypeConditional,
		ConditionalBranches: []field.Branch{
			branch("x", OpExists, nil, `\true`),
		},
	}
	v, _ = Resolve(txt, map[string]any{"x": "y"})
	if v.IsBool() || v.Text() != "true" {
		t.Fatalf("text mode escaped literal got %#v, want text \"true\"", v)
	}
}

func TestResolveMissingConditionField(t *testing.T) {
	f := &field.Field{
		Key:  "r",
		Type: field.TypeConditional,
		ConditionalBranches: []field.Branch{
			branch("ghost", OpEquals, "x", "matched"),
		},
		ConditionalDefaultValue: "nope",
	}
	v, _ := Resolve(f, map[string]any{})
	if v.Text() != "nope" {
		t.Fatalf("got %q, want nope", v.Text())
	}
}
