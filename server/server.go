// Package server exposes the form-filling engine over HTTP: a multipart
// fill endpoint returning the filled PDF, plus JSON self-description
// endpoints for discovery and health checking.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/formpress/formpress/field"
	"github.com/formpress/formpress/fill"
	"github.com/formpress/formpress/sample"
)

// DefaultMaxUpload caps fill request bodies at 32 MiB.
const DefaultMaxUpload = 32 << 20

// Server is the HTTP handler for the fill service.
type Server struct {
	version   string
	maxUpload int64
	log       *slog.Logger
	mux       *http.ServeMux
}

// New builds the service handler. A zero maxUpload falls back to
// DefaultMaxUpload; a nil logger falls back to slog.Default.
func New(version string, maxUpload int64, log *slog.Logger) *Server {
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUpload
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		version:   version,
		maxUpload: maxUpload,
		log:       log,
		mux:       http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/health", s.handleIndex)
	s.mux.HandleFunc("/fill", s.handleFill)
	return s
}

// ServeHTTP dispatches through the internal mux with request logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(sw, r)
	s.log.Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", sw.status,
		"duration", time.Since(start))
}

// statusWriter records the status code written to the response.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	body := errorBody{Error: msg}
	if err != nil {
		body.Details = err.Error()
	}
	writeJSON(w, status, body)
}

// handleIndex serves the JSON self-description on / and /health.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/health" {
		writeError(w, http.StatusNotFound, "not found", nil)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	fields := sample.ExampleFields()
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "formpress",
		"version": s.version,
		"status":  "ok",
		"endpoints": map[string]string{
			"POST /fill": "multipart form: file part 'pdf', JSON parts 'fields' and 'data'; returns the filled PDF",
			"GET /":      "this document",
		},
		"example": map[string]any{
			"fields": fields,
			"data":   sample.Generate(fields),
		},
	})
}

// handleFill runs a fill: multipart file part "pdf" plus JSON value parts
// "fields" and "data". The response is the filled document with summary
// headers; anything the engine skipped is reported there rather than
// failing the request.
func (s *Server) handleFill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "parsing multipart form", err)
		return
	}

	pdfFile, _, err := r.FormFile("pdf")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing 'pdf' file part", err)
		return
	}
	defer pdfFile.Close()

	fieldsJSON := r.FormValue("fields")
	if fieldsJSON == "" {
		writeError(w, http.StatusBadRequest, "missing 'fields' part", nil)
		return
	}
	var fields []field.Field
	if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
		writeError(w, http.StatusBadRequest, "decoding 'fields'", err)
		return
	}

	data := map[string]any{}
	if dataJSON := r.FormValue("data"); dataJSON != "" {
		if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
			writeError(w, http.StatusBadRequest, "decoding 'data'", err)
			return
		}
	}

	var out bytes.Buffer
	res, err := fill.Fill(pdfFile, &out, fields, data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "filling PDF", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(out.Len()))
	w.Header().Set("X-Fill-Drawn", strconv.Itoa(res.Drawn))
	w.Header().Set("X-Fill-Skipped", strconv.Itoa(res.Skipped))
	if len(res.Diagnostics) > 0 {
		w.Header().Set("X-Fill-Diagnostics", diagnosticsHeader(res.Diagnostics))
	}
	w.Write(out.Bytes())

	s.log.Info("fill complete",
		"pages", res.Pages,
		"drawn", res.Drawn,
		"skipped", res.Skipped,
		"diagnostics", len(res.Diagnostics))
}

// diagnosticsHeader flattens diagnostics into a single header-safe line.
func diagnosticsHeader(diags []fill.Diagnostic) string {
	msgs := make([]string, len(diags))
	for i, d := range diags {
		msgs[i] = strings.ReplaceAll(d.String(), "\n", " ")
	}
	return strings.Join(msgs, "; ")
}

// ListenAndServe runs the service on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
