package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
)

// Extractor loads the dataset from its source.
type Extractor interface {
	Fetch(ctx context.Context) (domain.Dataset, error)
}

// Transformer lays out a dataset as a chart.
type Transformer interface {
	Transform(ctx context.Context, ds domain.Dataset) (domain.Chart, error)
}

// Loader publishes a finished chart to a destination.
type Loader interface {
	Load(ctx context.Context, chart domain.Chart) error
}

// Pipeline runs the single fetch-build-publish pass.
type Pipeline struct {
	extractor   Extractor
	transformer Transformer
	loaders     []Loader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
}

// New creates a Pipeline publishing to every loader in order.
func New(e Extractor, t Transformer, logger *slog.Logger, metrics *observability.Metrics, loaders ...Loader) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loaders:     loaders,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness returns nil once the chart has been published, or an error
// describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("heatmap has not been built yet")
	}
	return nil
}

// Ready reports whether Run completed successfully.
func (p *Pipeline) Ready() bool { return p.ready.Load() }

// Run fetches the dataset once, builds the chart and publishes it. Failures
// are logged and returned; there is no retry.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	p.logger.Info("pipeline started", "loaders", len(p.loaders))

	ds, err := p.extractor.Fetch(ctx)
	if err != nil {
		p.logger.Error("fetch dataset failed", "error", err)
		return fmt.Errorf("fetch dataset: %w", err)
	}

	chart, err := p.transformer.Transform(ctx, ds)
	if err != nil {
		p.logger.Error("build heatmap failed", "error", err, "records", ds.Len())
		return fmt.Errorf("build heatmap: %w", err)
	}

	for _, l := range p.loaders {
		if err := l.Load(ctx, chart); err != nil {
			p.logger.Error("publish heatmap failed", "error", err)
			return fmt.Errorf("publish heatmap: %w", err)
		}
	}

	p.ready.Store(true)
	p.metrics.PipelineReady.Set(1)
	p.logger.Info("pipeline complete",
		"cells", len(chart.Cells),
		"years", len(chart.Years),
		"duration", time.Since(start),
	)
	return nil
}
