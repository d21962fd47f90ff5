package sample

import "github.com/formpress/formpress/field"

// ExampleFields returns a small worked field array used by service
// self-descriptions: a couple of placed text fields, a data-only field, a
// composite referencing them, and an options checkbox group.
func ExampleFields() []field.Field {
	return []field.Field{
		{
			ID: "fld_first", Key: "firstName", Type: field.TypeText,
			Variant: field.VariantSingle, Page: 1, Enabled: true,
			Position:        &field.Position{X: 72, Y: 120},
			Size:            &field.Size{Width: 150, Height: 30},
			PositionVersion: field.PositionVersionTopEdge,
		},
		{
			ID: "fld_last", Key: "lastName", Type: field.TypeText,
			Variant: field.VariantSingle, Page: 1, Enabled: true,
			Position:        &field.Position{X: 240, Y: 120},
			Size:            &field.Size{Width: 150, Height: 30},
			PositionVersion: field.PositionVersionTopEdge,
		},
		{
			ID: "fld_suffix", Key: "suffix", Type: field.TypeLogic,
			Variant: field.VariantSingle, Page: 1, Enabled: true,
		},
		{
			ID: "fld_full", Key: "fullName", Type: field.TypeCompositeText,
			Variant: field.VariantSingle, Page: 1, Enabled: true,
			Position:        &field.Position{X: 72, Y: 180},
			Size:            &field.Size{Width: 300, Height: 30},
			PositionVersion: field.PositionVersionTopEdge,
			Template:        "{firstName} {lastName}, {suffix}",
			Dependencies:    []string{"firstName", "lastName", "suffix"},
		},
		{
			ID: "fld_contact", Key: "contactMethod", Type: field.TypeCheckbox,
			Variant: field.VariantOptions, Page: 1, Enabled: true,
			MultiSelect:     true,
			RenderType:      field.RenderCheckmark,
			PositionVersion: field.PositionVersionTopEdge,
			OptionMappings: []field.OptionMapping{
				{Key: "email", Position: &field.Position{X: 72, Y: 240}},
				{Key: "phone", Position: &field.Position{X: 72, Y: 270}},
				{Key: "mail", Position: &field.Position{X: 72, Y: 300}},
			},
		},
	}
}
