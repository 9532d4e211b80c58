package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"survey-labeler/internal/charset"
	"survey-labeler/internal/diagnostic"
	"survey-labeler/internal/export"
	"survey-labeler/internal/mapping"
	"survey-labeler/internal/reconcile"
	"survey-labeler/internal/syntax"
)

// Handler serves the JSON API.
type Handler struct {
	logger  *slog.Logger
	options reconcile.Options
	maxBody int64
	metrics *Metrics
}

// NewHandler creates a Handler. opts.Overrides is ignored; overrides come
// with each request. metrics may be nil.
func NewHandler(logger *slog.Logger, opts reconcile.Options, maxBody int64, metrics *Metrics) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	opts.Overrides = nil

	return &Handler{logger: logger, options: opts, maxBody: maxBody, metrics: metrics}
}

// RegisterRoutes mounts the API on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.HealthCheck)

	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/parse", h.Parse)
		r.Post("/reconcile", h.Reconcile)
		r.Post("/syntax", h.Syntax)
	})
}

// Request is the body of every POST endpoint. Exactly one of Syntax and
// SyntaxBase64 is used; SyntaxBase64 carries raw file bytes in any supported
// encoding.
type Request struct {
	Syntax       string        `json:"syntax,omitempty"`
	SyntaxBase64 string        `json:"syntax_base64,omitempty"`
	Columns      []string      `json:"columns,omitempty"`
	Overrides    *mapping.File `json:"overrides,omitempty"`
}

// ReconcileResponse is the body returned by /api/reconcile.
type ReconcileResponse struct {
	Encoding    charset.Encoding       `json:"encoding"`
	Columns     []reconcile.Column     `json:"columns"`
	Report      reconcile.Report       `json:"report"`
	Summary     reconcile.Summary      `json:"summary"`
	Metadata    export.Metadata        `json:"metadata"`
	Diagnostics diagnostic.Diagnostics `json:"diagnostics"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error       string                  `json:"error"`
	Diagnostics *diagnostic.Diagnostics `json:"diagnostics,omitempty"`
}

var errNoSyntax = errors.New("one of syntax or syntax_base64 is required")

// HealthCheck reports that the server is up.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

// Parse returns the labels recovered from a syntax file.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	doc, ok := h.parseSyntax(w, req)
	if !ok {
		return
	}

	h.logger.Debug("Parsed syntax",
		slog.Int("variables", len(doc.Variables)),
		slog.Int("warnings", len(doc.Diagnostics.Warnings)))

	writeJSON(w, http.StatusOK, doc)
}

// Reconcile joins a syntax file with dataset columns.
func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	res, doc, ok := h.reconcile(w, r)
	if !ok {
		return
	}

	diags := doc.Diagnostics
	diags.Merge(res.Diagnostics)

	writeJSON(w, http.StatusOK, ReconcileResponse{
		Encoding:    doc.Encoding,
		Columns:     res.Columns,
		Report:      res.Report,
		Summary:     res.Report.Summary(),
		Metadata:    export.NewMetadata(res),
		Diagnostics: diags,
	})
}

// Syntax returns label syntax for the reconciled columns, one label per
// column.
func (h *Handler) Syntax(w http.ResponseWriter, r *http.Request) {
	res, _, ok := h.reconcile(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if err := syntax.Write(w, res.Names(), res.ColumnLabels(), res.ValueLabels); err != nil {
		h.logger.Warn("Failed to write syntax response", slog.String("error", err.Error()))
	}
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) (*reconcile.Result, *syntax.Document, bool) {
	req, ok := h.decode(w, r)
	if !ok {
		return nil, nil, false
	}

	if len(req.Columns) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("columns are required"), nil)
		return nil, nil, false
	}

	if req.Overrides != nil {
		if diags := mapping.Validate(req.Overrides); diags.HasErrors() {
			writeError(w, http.StatusUnprocessableEntity, errors.New("invalid overrides"), diags)
			return nil, nil, false
		}
	}

	doc, ok := h.parseSyntax(w, req)
	if !ok {
		return nil, nil, false
	}

	opts := h.options
	opts.Overrides = req.Overrides

	res := reconcile.Reconcile(doc, req.Columns, opts)
	h.metrics.observeReconcile(res)

	h.logger.Debug("Reconciled columns",
		slog.Int("columns", len(res.Columns)),
		slog.Int("not_found", res.Report.Summary().NotFound))

	return res, doc, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (*Request, bool) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err, nil)
			return nil, false
		}

		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err), nil)

		return nil, false
	}

	return &req, true
}

func (h *Handler) parseSyntax(w http.ResponseWriter, req *Request) (*syntax.Document, bool) {
	var data []byte

	switch {
	case req.SyntaxBase64 != "":
		decoded, err := base64.StdEncoding.DecodeString(req.SyntaxBase64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid syntax_base64: %w", err), nil)
			return nil, false
		}

		data = decoded
	case req.Syntax != "":
		data = []byte(req.Syntax)
	default:
		writeError(w, http.StatusBadRequest, errNoSyntax, nil)
		return nil, false
	}

	doc, err := syntax.ParseBytes(data)
	if err != nil {
		h.logger.Info("Rejected undecodable syntax", slog.String("error", err.Error()))
		h.metrics.observeUndecodable()
		writeError(w, http.StatusUnprocessableEntity, err, nil)

		return nil, false
	}

	return doc, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error, diags *diagnostic.Diagnostics) {
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Diagnostics: diags})
}
