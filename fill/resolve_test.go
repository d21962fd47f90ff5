package fill

import (
	"testing"

	"github.com/formpress/formpress/field"
)

func composite(key, tpl string) field.Field {
	return field.Field{
		ID: "id_" + key, Key: key, Type: field.TypeCompositeText,
		Enabled: true, Template: tpl,
	}
}

func TestResolveValuesComposite(t *testing.T) {
	fields := []field.Field{composite("fullName", "{firstName} {lastName}")}
	data := map[string]any{"firstName": "Jane", "lastName": "Doe"}

	values, diags := ResolveValues(fields, data)
	if got := values["fullName"]; got != "Jane Doe" {
		t.Errorf("fullName = %v", got)
	}
	if len(diags) != 0 {
		t.Errorf("diags = %v", diags)
	}
}

func TestResolveValuesChaining(t *testing.T) {
	// A composite referencing an earlier composite sees its computed value.
	fields := []field.Field{
		composite("fullName", "{firstName} {lastName}"),
		composite("greeting", "Dear {fullName}"),
	}
	values, _ := ResolveValues(fields, map[string]any{
		"firstName": "Jane", "lastName": "Doe",
	})
	if got := values["greeting"]; got != "Dear Jane Doe" {
		t.Errorf("greeting = %v", got)
	}
}

func TestResolveValuesArrayOrder(t *testing.T) {
	// Resolution is a single pass in array order: a reference to a later
	// composite sees only what the data holds at that point.
	fields := []field.Field{
		composite("greeting", "Dear {fullName}"),
		composite("fullName", "{firstName} {lastName}"),
	}
	values, _ := ResolveValues(fields, map[string]any{
		"firstName": "Jane", "lastName": "Doe",
	})
	if got := values["greeting"]; got != "Dear" {
		t.Errorf("greeting = %q, want unresolved reference dropped", got)
	}
	if got := values["fullName"]; got != "Jane Doe" {
		t.Errorf("fullName = %v", got)
	}
}

func TestResolveValuesDoesNotMutateData(t *testing.T) {
	fields := []field.Field{composite("fullName", "{firstName}")}
	data := map[string]any{"firstName": "Jane"}

	ResolveValues(fields, data)
	if _, ok := data["fullName"]; ok {
		t.Error("input data was mutated")
	}
}

func TestResolveValuesSkipsDisabled(t *testing.T) {
	f := composite("fullName", "{firstName}")
	f.Enabled = false

	values, _ := ResolveValues([]field.Field{f}, map[string]any{"firstName": "Jane"})
	if _, ok := values["fullName"]; ok {
		t.Error("disabled composite was resolved")
	}
}

func TestResolveValuesConditionalDefault(t *testing.T) {
	f := field.Field{
		Key: "status", Type: field.TypeConditional, Enabled: true,
		ConditionalBranches: []field.Branch{{
			Condition:   field.Condition{Field: "missing", Operator: "equals", Value: "x"},
			RenderValue: "yes",
		}},
		ConditionalDefaultValue: "no",
	}
	values, diags := ResolveValues([]field.Field{f}, map[string]any{})
	if values["status"] != "no" {
		t.Errorf("status = %v, want default", values["status"])
	}
	if len(diags) != 0 {
		t.Errorf("diags = %v", diags)
	}
}

func TestResolveValuesConditionalWarnings(t *testing.T) {
	// An ambiguous checkbox value surfaces as a diagnostic carrying the key.
	f := field.Field{
		Key: "agree", Type: field.TypeConditional, Enabled: true,
		ConditionalRenderAs: field.ConditionalRenderCheckbox,
		ConditionalBranches: []field.Branch{{
			Condition:   field.Condition{Field: "x", Operator: "exists"},
			RenderValue: "maybe",
		}},
	}
	values, diags := ResolveValues([]field.Field{f}, map[string]any{"x": "y"})
	if values["agree"] != false {
		t.Errorf("agree = %v, want unchecked", values["agree"])
	}
	if len(diags) != 1 || diags[0].FieldKey != "agree" {
		t.Errorf("diags = %v, want one ambiguity warning", diags)
	}
}

func TestFieldValue(t *testing.T) {
	f := textField("note", 0, 0)

	if got := fieldValue(&f, map[string]any{"note": "hello"}); got != "hello" {
		t.Errorf("bound value: got %v", got)
	}

	f.Properties = &field.Properties{DefaultValue: "N/A"}
	if got := fieldValue(&f, map[string]any{}); got != "N/A" {
		t.Errorf("default value: got %v", got)
	}
	if got := fieldValue(&f, map[string]any{"note": ""}); got != "N/A" {
		t.Errorf("empty falls back to default: got %v", got)
	}

	// A bound false is a value, not an absence.
	cb := field.Field{Key: "agree", Type: field.TypeCheckbox, Enabled: true}
	if got := fieldValue(&cb, map[string]any{"agree": false}); got != false {
		t.Errorf("bound false: got %v", got)
	}
}
