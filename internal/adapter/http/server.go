package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// ChartSource returns the published chart, if any.
type ChartSource interface {
	Current() (domain.Chart, bool)
}

// Server exposes the rendered heatmap alongside health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	charts     ChartSource
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the heatmap, API, and probe routes.
func NewServer(addr string, ready ReadinessChecker, charts ChartSource, corsOrigins []string, metrics *observability.Metrics, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		charts:  charts,
		metrics: metrics,
		logger:  logger,
	}

	r.Get("/", s.handleRender(render.FormatHTML, render.HTML{}))
	r.Get("/heatmap.svg", s.handleRender(render.FormatSVG, render.SVG{}))
	r.Get("/heatmap.png", s.handleRender(render.FormatPNG, render.NewPNG()))
	r.Route("/api", func(ar chi.Router) {
		ar.Get("/chart", s.handleChart)
		ar.Get("/tooltip", s.handleTooltip)
	})

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", handleReady(ready))
	r.Handle("/metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// handleRender renders the current chart into a buffer first so a render
// failure still produces a clean 500.
func (s *Server) handleRender(format render.Format, renderer render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chart, ok := s.charts.Current()
		if !ok {
			writeError(w, http.StatusServiceUnavailable, "heatmap not available")
			return
		}

		start := time.Now()
		var buf bytes.Buffer
		if err := renderer.Render(&buf, chart); err != nil {
			s.metrics.Renders.WithLabelValues(string(format), "error").Inc()
			s.logger.Error("render failed",
				"format", format,
				"error", err,
				"request_id", middleware.GetReqID(r.Context()),
			)
			writeError(w, http.StatusInternalServerError, "render failed")
			return
		}
		s.metrics.Renders.WithLabelValues(string(format), "success").Inc()
		s.metrics.RenderDuration.WithLabelValues(string(format)).Observe(time.Since(start).Seconds())

		w.Header().Set("Content-Type", renderer.ContentType())
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

func (s *Server) handleChart(w http.ResponseWriter, _ *http.Request) {
	chart, ok := s.charts.Current()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "heatmap not available")
		return
	}
	s.metrics.Renders.WithLabelValues("json", "success").Inc()
	writeJSON(w, http.StatusOK, chart)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
