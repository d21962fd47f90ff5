// Package fill renders a field model onto the pages of an existing PDF.
//
// The pipeline validates the source document, resolves composite and
// conditional field values against the data object, imports every source page
// at its native size, and overlays each enabled, placed field in page order.
// Per-field problems (bad images, out-of-range pages, empty values) are
// collected as diagnostics and never abort the pass: the output document is
// either fully produced with best-effort omissions, or the whole operation
// fails because the source PDF itself could not be parsed.
package fill

import (
	"bytes"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/formpress/formpress/field"
)

// a4Width and a4Height are the fallback page size in points when a source
// page reports no MediaBox.
const (
	a4Width  = 595.28
	a4Height = 841.89
)

// Fill reads a source PDF from input, overlays the enabled placed fields with
// values resolved from data, and writes the filled document to output.
//
// A source document that fails to parse is fatal. Everything else degrades to
// per-field diagnostics in the returned Result.
func Fill(input io.Reader, output io.Writer, fields []field.Field, data map[string]any) (*Result, error) {
	src, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("fill: reading input: %w", err)
	}

	pageCount, err := sourcePageCount(src)
	if err != nil {
		return nil, err
	}

	values, diags := ResolveValues(fields, data)

	res := &Result{Pages: pageCount, Diagnostics: diags}
	byPage := groupByPage(fields, pageCount, res)

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	imp := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(src))

	for p := 1; p <= pageCount; p++ {
		tpl := imp.ImportPageFromStream(pdf, &rs, p, "/MediaBox")
		pw, ph := pageSize(imp, p)

		pdf.AddPageFormat("P", fpdf.SizeType{Wd: pw, Ht: ph})
		imp.UseImportedTemplate(pdf, tpl, 0, 0, pw, ph)

		r := NewRenderer(pdf, p, pw, ph)
		for _, f := range byPage[p] {
			r.Render(f, fieldValue(f, values))
		}
		res.Drawn += r.Drawn()
		res.Skipped += r.Skipped()
		res.Diagnostics = append(res.Diagnostics, r.Diagnostics()...)
	}

	if pdf.Err() {
		return res, fmt.Errorf("fill: rendering: %w", pdf.Error())
	}
	if err := pdf.Output(output); err != nil {
		return res, fmt.Errorf("fill: writing output: %w", err)
	}
	return res, nil
}

// sourcePageCount parses and validates the source document, returning its
// page count. Parse failure here is the fatal error class: the fill cannot
// proceed on a document it cannot read.
func sourcePageCount(src []byte) (int, error) {
	ctx, err := api.ReadContext(bytes.NewReader(src), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("fill: parsing source PDF: %w", err)
	}
	if ctx.PageCount < 1 {
		return 0, fmt.Errorf("fill: source PDF has no pages")
	}
	return ctx.PageCount, nil
}

// groupByPage buckets renderable fields by page number, preserving array
// order within a page. Fields on pages past the end of the document are
// reported as warnings and counted as skipped.
func groupByPage(fields []field.Field, pageCount int, res *Result) map[int][]*field.Field {
	byPage := make(map[int][]*field.Field)
	for i := range fields {
		f := &fields[i]
		if !f.Enabled || f.DataOnly() || f.Type == field.TypeLogic {
			continue
		}
		if f.Page < 1 || f.Page > pageCount {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				FieldKey: f.Key,
				Page:     f.Page,
				Message:  fmt.Sprintf("page %d is outside the document (1-%d)", f.Page, pageCount),
			})
			res.Skipped++
			continue
		}
		byPage[f.Page] = append(byPage[f.Page], f)
	}
	return byPage
}

// pageSize reads a page's MediaBox dimensions from the importer, falling
// back to A4 when the source page carries none.
func pageSize(imp *gofpdi.Importer, page int) (w, h float64) {
	sizes := imp.GetPageSizes()
	if dims, ok := sizes[page]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			w, h = mb["w"], mb["h"]
		}
	}
	if w == 0 || h == 0 {
		w, h = a4Width, a4Height
	}
	return w, h
}
