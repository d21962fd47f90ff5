package fill

import "fmt"

// Diagnostic is a non-fatal problem reported while resolving or rendering a
// single field. Diagnostics never abort a fill pass; the offending field is
// skipped and rendering continues.
type Diagnostic struct {
	FieldKey string `json:"fieldKey"`
	Page     int    `json:"page,omitempty"`
	Message  string `json:"message"`
}

func (d Diagnostic) String() string {
	if d.Page > 0 {
		return fmt.Sprintf("%s (page %d): %s", d.FieldKey, d.Page, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.FieldKey, d.Message)
}

// Result summarizes a fill pass: how many draw operations landed, how many
// eligible fields were skipped, and every diagnostic collected along the way.
// Option-variant fields count one draw per selected mapping.
type Result struct {
	Pages       int          `json:"pages"`
	Drawn       int          `json:"drawn"`
	Skipped     int          `json:"skipped"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}
