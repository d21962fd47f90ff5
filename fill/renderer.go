package fill

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/formpress/formpress/field"
)

// checkGlyph is the ZapfDingbats check mark (code point 0x33).
const checkGlyph = "3"

// Renderer draws resolved field values onto the current page of a document.
// One Renderer serves one page; Fill creates a fresh one per imported page.
//
// Every field is rendered in isolation: a malformed value produces a
// diagnostic and a skip, never an error that would abort the page.
type Renderer struct {
	pdf      *fpdf.Fpdf
	pageW    float64
	pageH    float64
	page     int
	drawn    int
	skipped  int
	diags    []Diagnostic
	imageSeq int
}

// NewRenderer returns a renderer for the current page of pdf, which must
// already be sized pageW x pageH in points.
func NewRenderer(pdf *fpdf.Fpdf, page int, pageW, pageH float64) *Renderer {
	return &Renderer{pdf: pdf, page: page, pageW: pageW, pageH: pageH}
}

// Drawn returns the number of draw operations performed so far.
func (r *Renderer) Drawn() int { return r.drawn }

// Skipped returns the number of eligible fields skipped so far.
func (r *Renderer) Skipped() int { return r.skipped }

// Diagnostics returns the problems reported so far.
func (r *Renderer) Diagnostics() []Diagnostic { return r.diags }

// Render draws one field with its resolved value. Disabled and data-only
// fields are ignored; empty values skip the field except for checkboxes,
// where false is a valid draw-nothing state.
func (r *Renderer) Render(f *field.Field, value any) {
	if !f.Enabled || f.Type == field.TypeLogic {
		return
	}
	if f.Variant == field.VariantOptions {
		r.renderOptions(f, value)
		return
	}
	if f.Position == nil {
		return // data-only
	}

	switch f.Type {
	case field.TypeCheckbox:
		r.renderCheckbox(f, field.Truthy(value))
	case field.TypeConditional:
		if f.ConditionalRenderAs == field.ConditionalRenderCheckbox {
			r.renderCheckbox(f, field.Truthy(value))
			return
		}
		r.renderTextValue(f, value)
	case field.TypeImage, field.TypeSignature:
		if field.Empty(value) {
			r.skip()
			return
		}
		r.renderImage(f, field.Stringify(value))
	default: // text, composite-text
		r.renderTextValue(f, value)
	}
}

func (r *Renderer) skip() { r.skipped++ }

func (r *Renderer) diag(f *field.Field, format string, args ...any) {
	r.diags = append(r.diags, Diagnostic{
		FieldKey: f.Key,
		Page:     r.page,
		Message:  fmt.Sprintf(format, args...),
	})
}

// renderOptions expands an options-variant field: every mapping whose key is
// among the selected values is drawn independently at its own position.
func (r *Renderer) renderOptions(f *field.Field, value any) {
	selected := selectedKeys(value, f.MultiSelect)
	if len(selected) == 0 {
		r.skip()
		return
	}

	drew := false
	for i := range f.OptionMappings {
		m := &f.OptionMappings[i]
		if !selected[m.Key] || m.Position == nil {
			continue
		}

		box := m.Box()
		renderType := m.RenderType
		if renderType == "" {
			renderType = f.RenderType
		}

		switch renderType {
		case field.RenderCheckmark:
			r.drawCheckmark(f, m.Position, box, f.Prop().CheckboxSize)
			drew = true
		case field.RenderCustom:
			if m.CustomText == "" {
				continue
			}
			r.drawText(f, m.Position, box, m.CustomText)
			drew = true
		default: // text
			r.drawText(f, m.Position, box, m.Key)
			drew = true
		}
	}
	if !drew {
		r.skip()
	}
}

// selectedKeys normalizes the bound value into the set of selected option
// keys: an array for multi-select fields, a single wrapped scalar otherwise.
func selectedKeys(value any, multiSelect bool) map[string]bool {
	out := make(map[string]bool)
	if multiSelect {
		switch t := value.(type) {
		case []any:
			for _, e := range t {
				if s := field.Stringify(e); s != "" {
					out[s] = true
				}
			}
		case []string:
			for _, s := range t {
				if s != "" {
					out[s] = true
				}
			}
		default:
			if s := field.Stringify(value); s != "" {
				out[s] = true
			}
		}
		return out
	}
	if s := field.Stringify(value); s != "" {
		out[s] = true
	}
	return out
}

func (r *Renderer) renderCheckbox(f *field.Field, checked bool) {
	if !checked {
		r.skip() // valid draw-nothing state
		return
	}
	r.drawCheckmark(f, f.Position, f.Box(), f.Prop().CheckboxSize)
}

func (r *Renderer) renderTextValue(f *field.Field, value any) {
	s := field.Stringify(value)
	if s == "" {
		r.skip()
		return
	}
	r.drawText(f, f.Position, f.Box(), s)
}

// fontStyle maps bold/italic flags to the drawing library's style string.
func fontStyle(p field.Properties) string {
	style := ""
	if p.Bold {
		style += "B"
	}
	if p.Italic {
		style += "I"
	}
	return style
}

// fontFamily maps the model's family names onto the core PDF fonts.
func fontFamily(name string) string {
	switch name {
	case "Times":
		return "Times"
	case "Courier":
		return "Courier"
	default:
		return "Helvetica"
	}
}

// drawText draws a single line of text inside the box, honoring alignment,
// padding, font, and color. The baseline sits at the box bottom plus bottom
// padding; no wrapping is performed.
func (r *Renderer) drawText(f *field.Field, pos *field.Position, box field.Size, text string) {
	p := f.Prop()
	size := p.FontSize
	if size <= 0 {
		size = 12
	}
	r.pdf.SetFont(fontFamily(p.FontFamily), fontStyle(p), size)
	if p.TextColor != nil {
		r.pdf.SetTextColor(p.TextColor.R, p.TextColor.G, p.TextColor.B)
	}

	pad := p.Pad()
	textW := r.pdf.GetStringWidth(text)

	var x float64
	switch p.TextAlign {
	case field.AlignCenter:
		x = pos.X + (box.Width-textW)/2
	case field.AlignRight:
		x = pos.X + box.Width - textW - pad.Right
	default:
		x = pos.X + pad.Left
	}

	pdfY := ToPDFY(pos.Y, box.Height, r.pageH, f.PositionVersion)
	baseline := r.pageH - (pdfY + pad.Bottom)

	r.pdf.Text(x, baseline, text)
	r.drawn++

	if p.TextColor != nil {
		r.pdf.SetTextColor(0, 0, 0)
	}
}

// drawCheckmark draws a check glyph centered in the box. The glyph size comes
// from checkboxSize when set, otherwise from the smaller box edge.
func (r *Renderer) drawCheckmark(f *field.Field, pos *field.Position, box field.Size, checkSize float64) {
	size := checkSize
	if size <= 0 {
		size = min(box.Width, box.Height)
	}
	r.pdf.SetFont("ZapfDingbats", "", size)

	glyphW := r.pdf.GetStringWidth(checkGlyph)
	top := deviceTop(pos.Y, box.Height, r.pageH, f.PositionVersion)

	x := pos.X + (box.Width-glyphW)/2
	y := top + box.Height/2 + size/3 // approximate vertical centering

	r.pdf.Text(x, y, checkGlyph)
	r.drawn++
}

// renderImage embeds a data-URI image scaled per the field's fit mode. Decode
// failures and unsupported formats skip the field with a diagnostic.
func (r *Renderer) renderImage(f *field.Field, uri string) {
	img, err := decodeDataURI(uri)
	if err != nil {
		r.diag(f, "%v", err)
		r.skip()
		return
	}

	box := f.Box()
	p := f.Prop()
	w, h, dx, dy := img.scaleInto(box.Width, box.Height, p.FitMode)

	x := f.Position.X
	top := deviceTop(f.Position.Y, box.Height, r.pageH, f.PositionVersion)

	r.imageSeq++
	name := fmt.Sprintf("%s-%d-%d", f.Key, r.page, r.imageSeq)
	opts := fpdf.ImageOptions{ImageType: img.format, ReadDpi: false}
	r.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.data))

	clip := p.FitMode == field.FitCover
	if clip {
		r.pdf.ClipRect(x, top, box.Width, box.Height, false)
	}
	r.pdf.ImageOptions(name, x+dx, top+dy, w, h, false, opts, 0, "")
	if clip {
		r.pdf.ClipEnd()
	}
	r.drawn++
}
