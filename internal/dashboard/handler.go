package dashboard

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	gomponents "maragu.dev/gomponents"

	"github.com/KaramelBytes/legends-cli/internal/dataset"
)

// Handler serves the dashboard. Every request runs the pipeline from scratch.
type Handler struct {
	Pipeline    Pipeline
	Logger      *slog.Logger
	CORSOrigins []string
}

func NewHandler(p Pipeline, logger *slog.Logger, corsOrigins []string) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Pipeline: p, Logger: logger, CORSOrigins: corsOrigins}
}

// Routes mounts the page, the JSON API and the health check.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/", h.Dashboard)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		origins := h.CORSOrigins
		if len(origins) == 0 {
			origins = []string{"*"}
		}
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			MaxAge:         300,
		}))
		r.Get("/figure", h.Figure)
		r.Get("/summary", h.Summary)
	})
	return r
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	v, err := h.Pipeline()
	if err != nil {
		h.renderPipelineError(w, r, err)
		return
	}
	page, err := Page(v)
	if err != nil {
		h.renderPipelineError(w, r, err)
		return
	}
	h.Logger.Debug("dashboard rendered", "run_id", v.RunID, "players", v.Summary.Count, "request_id", middleware.GetReqID(r.Context()))
	renderHTML(w, http.StatusOK, page)
}

func (h *Handler) Figure(w http.ResponseWriter, r *http.Request) {
	v, err := h.Pipeline()
	if err != nil {
		h.writePipelineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v.Figure)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	v, err := h.Pipeline()
	if err != nil {
		h.writePipelineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id":  v.RunID,
		"source":  v.Source,
		"summary": v.Summary,
	})
}

// classify maps pipeline errors to a status and page title. Problems with the
// file's contents are 422; anything else is a server error.
func classify(err error) (int, string) {
	var missing *dataset.MissingColumnsError
	var parse *dataset.ParseError
	var fields *dataset.FieldCountError
	switch {
	case errors.As(err, &missing):
		return http.StatusUnprocessableEntity, "Missing Required Columns"
	case errors.As(err, &parse), errors.As(err, &fields):
		return http.StatusUnprocessableEntity, "Invalid Value"
	case errors.Is(err, dataset.ErrEmptyDataset):
		return http.StatusUnprocessableEntity, "Empty Dataset"
	default:
		return http.StatusInternalServerError, "Dataset Unavailable"
	}
}

func (h *Handler) renderPipelineError(w http.ResponseWriter, r *http.Request, err error) {
	status, title := classify(err)
	h.Logger.Error("pipeline failed", "error", err, "status", status, "request_id", middleware.GetReqID(r.Context()))
	renderHTML(w, status, ErrorPage(title, err.Error()))
}

func (h *Handler) writePipelineError(w http.ResponseWriter, r *http.Request, err error) {
	status, title := classify(err)
	h.Logger.Error("pipeline failed", "error", err, "status", status, "request_id", middleware.GetReqID(r.Context()))
	writeJSON(w, status, map[string]string{"error": title, "message": err.Error()})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
