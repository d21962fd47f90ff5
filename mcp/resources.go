package mcp

import (
	"encoding/json"

	"github.com/formpress/formpress/sample"
)

// ExampleFieldsURI identifies the worked example field array resource.
const ExampleFieldsURI = "formpress://example/fields"

// RegisterResources adds the built-in resources to the server.
func RegisterResources(s *Server) {
	s.AddResource(Resource{
		URI:         ExampleFieldsURI,
		Name:        "Example field array",
		Description: "A worked example: text, logic, composite, and option fields with matching sample data, in the shape the fill_pdf tool expects.",
		MIMEType:    "application/json",
		Handler:     handleExampleFields,
	})
}

func handleExampleFields(uri string) ([]ResourceContent, error) {
	fields := sample.ExampleFields()
	doc := map[string]any{
		"fields": fields,
		"data":   sample.Generate(fields),
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "application/json",
		Text:     string(jsonBytes),
	}}, nil
}
