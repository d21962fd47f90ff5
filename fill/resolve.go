package fill

import (
	"github.com/formpress/formpress/conditional"
	"github.com/formpress/formpress/field"
	"github.com/formpress/formpress/template"
)

// ResolveValues computes the derived value of every enabled composite and
// conditional field, seeding each from the raw data plus already-computed
// values. Fields are processed once, in array order: a composite field that
// references a later composite field sees that field's raw value, and cycles
// degrade to empty substitutions. Callers that need chains resolved must
// order the field array accordingly.
//
// The returned map is a copy; the input data is never mutated. Resolution
// must complete before any drawing begins so composite templates can
// reference other computed fields.
func ResolveValues(fields []field.Field, data map[string]any) (map[string]any, []Diagnostic) {
	values := make(map[string]any, len(data)+len(fields))
	for k, v := range data {
		values[k] = v
	}

	var diags []Diagnostic
	for i := range fields {
		f := &fields[i]
		if !f.Enabled {
			continue
		}
		switch f.Type {
		case field.TypeCompositeText:
			fm := field.DefaultFormatting()
			if f.CompositeFormatting != nil {
				fm = *f.CompositeFormatting
			}
			values[f.Key] = template.Evaluate(f.Template, values, fm)
		case field.TypeConditional:
			v, warnings := conditional.Resolve(f, values)
			for _, w := range warnings {
				diags = append(diags, Diagnostic{FieldKey: f.Key, Message: w})
			}
			values[f.Key] = v.Raw()
		}
	}
	return values, diags
}

// fieldValue picks the value a field renders: the resolved/bound value when
// present, otherwise the field's configured default. A bound false boolean is
// a real value, not an absence.
func fieldValue(f *field.Field, values map[string]any) any {
	v, ok := values[f.Key]
	if ok && !field.Empty(v) {
		return v
	}
	if p := f.Prop(); p.DefaultValue != "" {
		return p.DefaultValue
	}
	return v
}
