package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/entroplot"
	"github.com/aretw0/entroplot/internal/presentation/chart"
	"github.com/aretw0/entroplot/internal/presentation/tui"
	"github.com/aretw0/entroplot/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// FigureSource runs the plotting pipeline on demand.
type FigureSource interface {
	Collect(ctx context.Context) (*domain.Figure, error)
	Render(w io.Writer, fig *domain.Figure) error
}

// Server re-runs the pipeline on every request so the chart tracks the
// result files as experiments write them.
type Server struct {
	Source FigureSource
	Logger *slog.Logger
}

// NewHandler creates the HTTP handler: the live chart, its Plotly JSON,
// Prometheus metrics from gatherer, and health/info endpoints.
func NewHandler(source FigureSource, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	s := &Server{Source: source, Logger: logger}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleChart)
	r.Get("/figure.json", s.handleFigure)
	r.Get("/health", handleHealth)
	r.Get("/info", handleInfo)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) collect(w http.ResponseWriter, r *http.Request) (*domain.Figure, bool) {
	fig, err := s.Source.Collect(r.Context())
	if errors.Is(err, domain.ErrNoInputFiles) {
		http.Error(w, tui.NoInputMessage, http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		s.Logger.Error("failed to collect figure", "error", err)
		http.Error(w, "failed to collect figure", http.StatusInternalServerError)
		return nil, false
	}
	return fig, true
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	fig, ok := s.collect(w, r)
	if !ok {
		return
	}

	// Buffer so a render failure can still produce a clean 500.
	var buf bytes.Buffer
	if err := s.Source.Render(&buf, fig); err != nil {
		s.Logger.Error("failed to render figure", "error", err)
		http.Error(w, "failed to render figure", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	fig, ok := s.collect(w, r)
	if !ok {
		return
	}

	payload, err := chart.MarshalFigure(fig)
	if err != nil {
		s.Logger.Error("failed to marshal figure", "error", err)
		http.Error(w, "failed to marshal figure", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"app":     "entroplot-http",
		"version": strings.TrimSpace(entroplot.Version),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
