// Command formpress fills PDF forms from a field model and a data object.
//
// It runs in one of two modes:
//
//	formpress --mode=http               # HTTP fill service
//	formpress --mode=stdio              # MCP server over stdio
//
// # HTTP mode
//
//	POST /fill    multipart form: file part "pdf", JSON parts "fields" and
//	              "data"; responds with the filled PDF and summary headers
//	GET /         JSON self-description with an example request shape
//	GET /health   same document, for health checks
//
// # Stdio mode
//
// A Model Context Protocol server. Add to claude_desktop_config.json:
//
//	{
//	  "mcpServers": {
//	    "formpress": {
//	      "command": "formpress",
//	      "args": ["--mode=stdio"]
//	    }
//	  }
//	}
//
// Tools: fill_pdf, validate_template, preview_values, sample_data.
// Resource: formpress://example/fields.
//
// Configuration comes from flags and FORMPRESS_* environment variables.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/formpress/formpress/config"
	"github.com/formpress/formpress/mcp"
	"github.com/formpress/formpress/server"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrVersionRequested) {
			fmt.Printf("formpress %s\n", version)
			return
		}
		fmt.Fprintf(os.Stderr, "formpress: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr in both modes; in stdio mode stdout carries the
	// JSON-RPC stream and must stay clean.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(log)

	switch cfg.Mode {
	case config.ModeStdio:
		s := mcp.NewServer(version)
		mcp.RegisterTools(s)
		mcp.RegisterResources(s)
		if err := s.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "formpress: %v\n", err)
			os.Exit(1)
		}
	case config.ModeHTTP:
		s := server.New(version, cfg.MaxUpload, log)
		if err := s.ListenAndServe(cfg.Address()); err != nil {
			fmt.Fprintf(os.Stderr, "formpress: %v\n", err)
			os.Exit(1)
		}
	}
}
