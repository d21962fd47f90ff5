package sample

import (
	"strings"
	"testing"

	"github.com/formpress/formpress/field"
)

func placed(key string, typ field.Type) field.Field {
	return field.Field{
		Key: key, Type: typ, Page: 1, Enabled: true,
		Position: &field.Position{X: 10, Y: 10},
	}
}

func TestGenerateHeuristics(t *testing.T) {
	fields := []field.Field{
		placed("email", field.TypeText),
		placed("workPhone", field.TypeText),
		placed("firstName", field.TypeText),
		placed("lastName", field.TypeText),
		placed("birthDate", field.TypeText),
		placed("address", field.TypeText),
		placed("city", field.TypeText),
		placed("zip", field.TypeText),
		placed("favoriteColor", field.TypeText),
		placed("agree", field.TypeCheckbox),
		placed("photo", field.TypeImage),
		placed("autograph", field.TypeSignature),
	}
	got := Generate(fields)

	if v := got["email"]; v != "jane.doe@example.com" {
		t.Errorf("email = %v", v)
	}
	if v, _ := got["workPhone"].(string); !strings.Contains(v, "555") {
		t.Errorf("workPhone = %v", got["workPhone"])
	}
	if got["firstName"] != "Jane" || got["lastName"] != "Doe" {
		t.Errorf("names = %v / %v", got["firstName"], got["lastName"])
	}
	if got["birthDate"] != "01/15/2024" {
		t.Errorf("birthDate = %v", got["birthDate"])
	}
	if got["address"] != "123 Main Street" || got["city"] != "Springfield" {
		t.Errorf("address parts = %v / %v", got["address"], got["city"])
	}
	if got["zip"] != "62704" {
		t.Errorf("zip = %v", got["zip"])
	}
	if got["favoriteColor"] != "Sample favoriteColor" {
		t.Errorf("fallback = %v", got["favoriteColor"])
	}
	if got["agree"] != true {
		t.Errorf("checkbox sample = %v", got["agree"])
	}
	if v, _ := got["photo"].(string); !strings.HasPrefix(v, "data:image/png;base64,") {
		t.Errorf("photo = %v", got["photo"])
	}
	if got["autograph"] != PlaceholderPNG {
		t.Errorf("autograph = %v", got["autograph"])
	}
}

func TestGenerateSkipsDerivedAndUnplaced(t *testing.T) {
	fields := []field.Field{
		{Key: "hidden", Type: field.TypeText, Page: 1, Enabled: true}, // data-only
		{Key: "off", Type: field.TypeText, Page: 1, Enabled: false,
			Position: &field.Position{X: 1, Y: 1}},
		{Key: "full", Type: field.TypeCompositeText, Page: 1, Enabled: true,
			Position: &field.Position{X: 1, Y: 1}, Template: "{a}"},
		{Key: "cond", Type: field.TypeConditional, Page: 1, Enabled: true,
			Position: &field.Position{X: 1, Y: 1}},
	}
	got := Generate(fields)
	if len(got) != 0 {
		t.Fatalf("expected no samples, got %v", got)
	}
}

func TestGenerateOptions(t *testing.T) {
	single := field.Field{
		Key: "color", Type: field.TypeText, Variant: field.VariantOptions,
		Page: 1, Enabled: true,
		OptionMappings: []field.OptionMapping{
			{Key: "red", Position: &field.Position{X: 1, Y: 1}},
			{Key: "blue", Position: &field.Position{X: 1, Y: 30}},
		},
	}
	multi := single
	multi.Key = "colors"
	multi.MultiSelect = true

	custom := single
	custom.Key = "grade"
	custom.OptionMappings = []field.OptionMapping{
		{Key: "a", SampleValue: "A+", Position: &field.Position{X: 1, Y: 1}},
	}

	got := Generate([]field.Field{single, multi, custom})

	if got["color"] != "red" {
		t.Errorf("single option sample = %v", got["color"])
	}
	arr, ok := got["colors"].([]any)
	if !ok || len(arr) != 1 || arr[0] != "red" {
		t.Errorf("multi option sample = %v", got["colors"])
	}
	if got["grade"] != "A+" {
		t.Errorf("sampleValue override = %v", got["grade"])
	}
}

func TestExampleFieldsAreComplete(t *testing.T) {
	for _, f := range ExampleFields() {
		if !f.Complete() {
			t.Errorf("example field %q is not complete", f.Key)
		}
	}
	data := Generate(ExampleFields())
	if len(data) == 0 {
		t.Fatal("example fields generated no sample data")
	}
	if _, ok := data["fullName"]; ok {
		t.Error("composite field should not receive a sample value")
	}
}
