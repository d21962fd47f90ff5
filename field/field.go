// Package field defines the unified field model used by the template,
// conditional, and fill packages.
//
// A field binds a data key to zero or more positions on a PDF page. Fields
// without a position are data-only: they exist to supply values referenced by
// composite and conditional templates and are never drawn. The JSON shape
// matches the designer's wire format, so a fields array posted to the fill
// service unmarshals directly into []Field.
//
// Example JSON:
//
//	{
//	  "id": "fld_1",
//	  "key": "firstName",
//	  "type": "text",
//	  "variant": "single",
//	  "page": 1,
//	  "position": {"x": 72, "y": 140},
//	  "size": {"width": 120, "height": 30},
//	  "enabled": true,
//	  "positionVersion": "top-edge"
//	}
package field

// Type identifies what a field renders as.
type Type string

const (
	TypeText          Type = "text"
	TypeCheckbox      Type = "checkbox"
	TypeImage         Type = "image"
	TypeSignature     Type = "signature"
	TypeLogic         Type = "logic" // data-only, never drawn
	TypeCompositeText Type = "composite-text"
	TypeConditional   Type = "conditional"
)

// Variant distinguishes single-position fields from option groups.
type Variant string

const (
	VariantSingle  Variant = "single"
	VariantOptions Variant = "options"
)

// Render types for option mappings and single checkboxes.
const (
	RenderText      = "text"      // draw the option key verbatim
	RenderCheckmark = "checkmark" // draw a checkmark glyph
	RenderCustom    = "custom"    // draw the mapping's customText
)

// PositionVersionTopEdge marks a stored y as the offset from the page top to
// the field's top edge. It is the only convention the designer currently
// produces; any other value is treated as already bottom-origin.
const PositionVersionTopEdge = "top-edge"

// Text alignment values.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Image fit modes.
const (
	FitContain = "fit"     // preserve aspect ratio, fully inside the box
	FitCover   = "fill"    // preserve aspect ratio, fully cover the box
	FitStretch = "stretch" // use the box dimensions directly
)

// Conditional render modes.
const (
	ConditionalRenderText     = "text"
	ConditionalRenderCheckbox = "checkbox"
)

// Position is a point in the field's declared coordinate convention.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a box in PDF points.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RGB is a text color with components in 0-255.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Padding is insets applied inside a field's box when drawing text.
type Padding struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Properties are the rendering properties of a field.
type Properties struct {
	FontSize     float64  `json:"fontSize,omitempty"`
	FontFamily   string   `json:"fontFamily,omitempty"` // Helvetica, Times, Courier
	TextColor    *RGB     `json:"textColor,omitempty"`
	TextAlign    string   `json:"textAlign,omitempty"` // left, center, right
	Bold         bool     `json:"bold,omitempty"`
	Italic       bool     `json:"italic,omitempty"`
	CheckboxSize float64  `json:"checkboxSize,omitempty"`
	FitMode      string   `json:"fitMode,omitempty"` // fit, fill, stretch
	DefaultValue string   `json:"defaultValue,omitempty"`
	Padding      *Padding `json:"padding,omitempty"`
}

// OptionMapping binds one possible data value to one PDF position. Each entry
// is drawn independently when its key is among the selected values.
type OptionMapping struct {
	Key         string    `json:"key"`
	Position    *Position `json:"position,omitempty"`
	Size        *Size     `json:"size,omitempty"`
	CustomText  string    `json:"customText,omitempty"`
	SampleValue string    `json:"sampleValue,omitempty"`
	RenderType  string    `json:"renderType,omitempty"`
}

// Condition compares another field's value against a literal.
type Condition struct {
	Field    string `json:"field"`
	Operator string `json:"operator"` // equals, not-equals, contains, exists, not-exists
	Value    any    `json:"value,omitempty"`
}

// Branch is one condition → render-value pair of a conditional field.
type Branch struct {
	Condition   Condition `json:"condition"`
	RenderValue string    `json:"renderValue,omitempty"`
}

// Formatting controls how composite templates handle empty values,
// separators, and whitespace during evaluation.
type Formatting struct {
	EmptyValueBehavior string `json:"emptyValueBehavior,omitempty"` // skip, show-empty, placeholder
	SeparatorHandling  string `json:"separatorHandling,omitempty"`  // smart, literal
	WhitespaceHandling string `json:"whitespaceHandling,omitempty"` // normalize, preserve
}

// Formatting values.
const (
	EmptySkip        = "skip"
	EmptyShowEmpty   = "show-empty"
	EmptyPlaceholder = "placeholder"

	SeparatorSmart   = "smart"
	SeparatorLiteral = "literal"

	WhitespaceNormalize = "normalize"
	WhitespacePreserve  = "preserve"
)

// DefaultFormatting returns the formatting applied when a composite field
// does not carry its own.
func DefaultFormatting() Formatting {
	return Formatting{
		EmptyValueBehavior: EmptySkip,
		SeparatorHandling:  SeparatorSmart,
		WhitespaceHandling: WhitespaceNormalize,
	}
}

// Field is the central entity: one typed, positioned data binding on a PDF.
type Field struct {
	ID      string  `json:"id"`
	Key     string  `json:"key"`
	Type    Type    `json:"type"`
	Variant Variant `json:"variant,omitempty"`
	Page    int     `json:"page"`

	Position        *Position `json:"position,omitempty"` // absent for data-only fields
	Size            *Size     `json:"size,omitempty"`
	Enabled         bool      `json:"enabled"`
	PositionVersion string    `json:"positionVersion,omitempty"`

	OptionMappings []OptionMapping `json:"optionMappings,omitempty"`
	RenderType     string          `json:"renderType,omitempty"`
	MultiSelect    bool            `json:"multiSelect,omitempty"`

	Template     string   `json:"template,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`

	CompositeFormatting *Formatting `json:"compositeFormatting,omitempty"`

	ConditionalBranches     []Branch `json:"conditionalBranches,omitempty"`
	ConditionalDefaultValue string   `json:"conditionalDefaultValue,omitempty"`
	ConditionalRenderAs     string   `json:"conditionalRenderAs,omitempty"` // text, checkbox

	Properties *Properties `json:"properties,omitempty"`
}

// DefaultSize returns the default box for a field type.
func DefaultSize(t Type) Size {
	switch t {
	case TypeCheckbox:
		return Size{Width: 25, Height: 25}
	case TypeSignature:
		return Size{Width: 150, Height: 40}
	case TypeImage:
		return Size{Width: 150, Height: 100}
	default:
		return Size{Width: 100, Height: 30}
	}
}

// DefaultOptionSize is the box used for an option mapping without its own size.
func DefaultOptionSize() Size {
	return Size{Width: 25, Height: 25}
}

// Box returns the field's size, falling back to the type default.
func (f *Field) Box() Size {
	if f.Size != nil && f.Size.Width > 0 && f.Size.Height > 0 {
		return *f.Size
	}
	return DefaultSize(f.Type)
}

// Box returns the mapping's size, falling back to the option default.
func (m *OptionMapping) Box() Size {
	if m.Size != nil && m.Size.Width > 0 && m.Size.Height > 0 {
		return *m.Size
	}
	return DefaultOptionSize()
}

// DataOnly reports whether the field exists purely to supply values to
// composite/conditional templates. Options-variant fields are placed through
// their mappings, not a field-level position.
func (f *Field) DataOnly() bool {
	if f.Variant == VariantOptions {
		return len(f.OptionMappings) == 0
	}
	return f.Position == nil
}

// Complete reports whether the field is savable: a non-empty key, a valid
// page, and for options-variant fields at least one mapping.
func (f *Field) Complete() bool {
	if f.Key == "" || f.Page < 1 {
		return false
	}
	if f.Variant == VariantOptions {
		return len(f.OptionMappings) > 0
	}
	return true
}

// Prop returns the field's properties, or a zero value when absent.
func (f *Field) Prop() Properties {
	if f.Properties != nil {
		return *f.Properties
	}
	return Properties{}
}

// Pad returns the field's padding, or zero insets when absent.
func (p Properties) Pad() Padding {
	if p.Padding != nil {
		return *p.Padding
	}
	return Padding{}
}
