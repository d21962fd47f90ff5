// Package sample derives plausible sample values for a field model. The
// output feeds previews and the example payloads embedded in service
// self-descriptions; it is advisory only and never used for real fills.
package sample

import (
	"strings"

	"github.com/formpress/formpress/field"
)

// PlaceholderPNG is a 1x1 transparent PNG used as the sample value for image
// and signature fields.
const PlaceholderPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

// Generate returns a sample value per enabled field with a position. Derived
// fields (composite, conditional, logic) are left out: their values are
// computed from the other samples at fill time.
func Generate(fields []field.Field) map[string]any {
	out := make(map[string]any)
	for i := range fields {
		f := &fields[i]
		if !f.Enabled || f.DataOnly() {
			continue
		}
		switch f.Type {
		case field.TypeCompositeText, field.TypeConditional, field.TypeLogic:
			continue
		}
		if f.Variant == field.VariantOptions {
			out[f.Key] = optionSample(f)
			continue
		}
		switch f.Type {
		case field.TypeCheckbox:
			out[f.Key] = true
		case field.TypeImage, field.TypeSignature:
			out[f.Key] = PlaceholderPNG
		default:
			out[f.Key] = textSample(f.Key)
		}
	}
	return out
}

// optionSample picks the first mapping's value, wrapped in an array for
// multi-select fields.
func optionSample(f *field.Field) any {
	if len(f.OptionMappings) == 0 {
		return nil
	}
	m := f.OptionMappings[0]
	v := m.Key
	if m.SampleValue != "" {
		v = m.SampleValue
	}
	if f.MultiSelect {
		return []any{v}
	}
	return v
}

// textSample guesses a realistic value from the key name, falling back to
// "Sample <key>".
func textSample(key string) string {
	k := strings.ToLower(key)
	switch {
	case strings.Contains(k, "email"):
		return "jane.doe@example.com"
	case strings.Contains(k, "phone") || strings.Contains(k, "mobile") || strings.Contains(k, "fax"):
		return "(555) 123-4567"
	case strings.Contains(k, "firstname") || strings.Contains(k, "first_name"):
		return "Jane"
	case strings.Contains(k, "middlename") || strings.Contains(k, "middle_name"):
		return "Q"
	case strings.Contains(k, "lastname") || strings.Contains(k, "last_name") || strings.Contains(k, "surname"):
		return "Doe"
	case strings.Contains(k, "fullname") || k == "name":
		return "Jane Doe"
	case strings.Contains(k, "date") || strings.Contains(k, "dob"):
		return "01/15/2024"
	case strings.Contains(k, "address") || strings.Contains(k, "street"):
		return "123 Main Street"
	case strings.Contains(k, "city"):
		return "Springfield"
	case strings.Contains(k, "state"):
		return "CA"
	case strings.Contains(k, "zip") || strings.Contains(k, "postal"):
		return "62704"
	case strings.Contains(k, "country"):
		return "USA"
	case strings.Contains(k, "company") || strings.Contains(k, "employer"):
		return "Acme Corp"
	case strings.Contains(k, "amount") || strings.Contains(k, "total") || strings.Contains(k, "price"):
		return "1250.00"
	default:
		return "Sample " + key
	}
}
