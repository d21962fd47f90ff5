package mcp

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/formpress/formpress/field"
	"github.com/formpress/formpress/fill"
	"github.com/formpress/formpress/sample"
	"github.com/formpress/formpress/template"
)

// RegisterTools adds the form-filling tools to the server.
func RegisterTools(s *Server) {
	s.AddTool(fillPDFTool())
	s.AddTool(validateTemplateTool())
	s.AddTool(previewValuesTool())
	s.AddTool(sampleDataTool())
}

// fieldsArg decodes the "fields" argument into the field model. Arguments
// arrive as decoded JSON, so they round-trip through the marshaller.
func fieldsArg(args map[string]any) ([]field.Field, error) {
	raw, ok := args["fields"]
	if !ok {
		return nil, fmt.Errorf("missing 'fields' argument")
	}
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding fields: %w", err)
	}
	var fields []field.Field
	if err := json.Unmarshal(jsonBytes, &fields); err != nil {
		return nil, fmt.Errorf("decoding fields: %w", err)
	}
	return fields, nil
}

func dataArg(args map[string]any) map[string]any {
	if d, ok := args["data"].(map[string]any); ok {
		return d
	}
	return map[string]any{}
}

func jsonBlock(v any) ContentBlock {
	jsonBytes, _ := json.MarshalIndent(v, "", "  ")
	return ContentBlock{Type: "text", Text: string(jsonBytes)}
}

func fillPDFTool() Tool {
	return Tool{
		Name:        "fill_pdf",
		Description: "Overlay field values onto an existing PDF. Takes the source PDF as base64, a field array, and a data object; returns the filled PDF as base64 plus a summary of drawn and skipped fields.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"pdf_base64": map[string]any{
					"type":        "string",
					"description": "Source PDF, base64-encoded",
				},
				"fields": map[string]any{
					"type":        "array",
					"description": "Field definitions to render",
				},
				"data": map[string]any{
					"type":        "object",
					"description": "Data object keyed by field key",
				},
			},
			"required": []string{"pdf_base64", "fields"},
		},
		Handler: handleFillPDF,
	}
}

func handleFillPDF(args map[string]any) (ToolResult, error) {
	encoded, ok := args["pdf_base64"].(string)
	if !ok || encoded == "" {
		return ToolResult{}, fmt.Errorf("missing 'pdf_base64' argument")
	}
	src, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ToolResult{}, fmt.Errorf("decoding pdf_base64: %w", err)
	}

	fields, err := fieldsArg(args)
	if err != nil {
		return ToolResult{}, err
	}

	var buf bytes.Buffer
	res, err := fill.Fill(bytes.NewReader(src), &buf, fields, dataArg(args))
	if err != nil {
		return ToolResult{}, fmt.Errorf("filling PDF: %w", err)
	}

	summary := fmt.Sprintf("Filled %d page(s): %d field(s) drawn, %d skipped.",
		res.Pages, res.Drawn, res.Skipped)
	if len(res.Diagnostics) > 0 {
		msgs := make([]string, len(res.Diagnostics))
		for i, d := range res.Diagnostics {
			msgs[i] = d.String()
		}
		summary += "\nDiagnostics:\n" + strings.Join(msgs, "\n")
	}

	return ToolResult{
		Content: []ContentBlock{
			{Type: "text", Text: summary},
			{
				Type:     "resource",
				MIMEType: "application/pdf",
				Data:     base64.StdEncoding.EncodeToString(buf.Bytes()),
			},
		},
	}, nil
}

func validateTemplateTool() Tool {
	return Tool{
		Name:        "validate_template",
		Description: "Validate a composite template string against a field array. Returns validity, the referenced dependencies, and any resolution errors.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"template": map[string]any{
					"type":        "string",
					"description": "Template text with {key} placeholders",
				},
				"fields": map[string]any{
					"type":        "array",
					"description": "Field definitions the placeholders resolve against",
				},
			},
			"required": []string{"template", "fields"},
		},
		Handler: handleValidateTemplate,
	}
}

func handleValidateTemplate(args map[string]any) (ToolResult, error) {
	tpl, ok := args["template"].(string)
	if !ok {
		return ToolResult{}, fmt.Errorf("missing 'template' argument")
	}
	fields, err := fieldsArg(args)
	if err != nil {
		return ToolResult{}, err
	}

	return ToolResult{
		Content: []ContentBlock{jsonBlock(template.Validate(tpl, fields))},
	}, nil
}

func previewValuesTool() Tool {
	return Tool{
		Name:        "preview_values",
		Description: "Resolve composite and conditional fields against a data object without producing a PDF. Returns the computed values and any resolution warnings.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"fields": map[string]any{
					"type":        "array",
					"description": "Field definitions to resolve",
				},
				"data": map[string]any{
					"type":        "object",
					"description": "Data object keyed by field key",
				},
			},
			"required": []string{"fields"},
		},
		Handler: handlePreviewValues,
	}
}

func handlePreviewValues(args map[string]any) (ToolResult, error) {
	fields, err := fieldsArg(args)
	if err != nil {
		return ToolResult{}, err
	}

	values, diags := fill.ResolveValues(fields, dataArg(args))

	out := map[string]any{"values": values}
	if len(diags) > 0 {
		msgs := make([]string, len(diags))
		for i, d := range diags {
			msgs[i] = d.String()
		}
		out["warnings"] = msgs
	}
	return ToolResult{Content: []ContentBlock{jsonBlock(out)}}, nil
}

func sampleDataTool() Tool {
	return Tool{
		Name:        "sample_data",
		Description: "Generate a plausible sample data object for a field array, suitable for previewing a fill.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"fields": map[string]any{
					"type":        "array",
					"description": "Field definitions to generate data for",
				},
			},
			"required": []string{"fields"},
		},
		Handler: handleSampleData,
	}
}

func handleSampleData(args map[string]any) (ToolResult, error) {
	fields, err := fieldsArg(args)
	if err != nil {
		return ToolResult{}, err
	}
	return ToolResult{
		Content: []ContentBlock{jsonBlock(sample.Generate(fields))},
	}, nil
}
