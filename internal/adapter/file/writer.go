// Package file writes the rendered heatmap to disk.
package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
)

// Writer renders a chart into a file.
// It implements pipeline.Loader.
type Writer struct {
	path     string
	format   render.Format
	renderer render.Renderer
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewWriter creates a file sink for path in the given format.
func NewWriter(path string, format render.Format, metrics *observability.Metrics, logger *slog.Logger) (*Writer, error) {
	r, err := render.ForFormat(format)
	if err != nil {
		return nil, err
	}
	return &Writer{path: path, format: format, renderer: r, metrics: metrics, logger: logger}, nil
}

// Load renders chart to a temporary file next to the target and renames it
// into place, so readers never observe a partial document.
func (w *Writer) Load(_ context.Context, chart domain.Chart) error {
	start := time.Now()
	if err := w.write(chart); err != nil {
		w.metrics.Renders.WithLabelValues(string(w.format), "error").Inc()
		return err
	}
	w.metrics.Renders.WithLabelValues(string(w.format), "success").Inc()
	w.metrics.RenderDuration.WithLabelValues(string(w.format)).Observe(time.Since(start).Seconds())
	w.logger.Info("heatmap written", "path", w.path, "format", w.format)
	return nil
}

func (w *Writer) write(chart domain.Chart) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".heatmap-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // already renamed on success

	if err := w.renderer.Render(tmp, chart); err != nil {
		tmp.Close() //nolint:errcheck,gosec // render error takes precedence
		return fmt.Errorf("render %s: %w", w.format, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}
