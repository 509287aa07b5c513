package pipeline

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
)

// ChartBuilder implements Transformer with a fixed layout and classifier.
type ChartBuilder struct {
	layout     domain.Layout
	classifier domain.Classifier
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewTransformer creates a ChartBuilder for the given surface.
func NewTransformer(layout domain.Layout, classifier domain.Classifier, metrics *observability.Metrics, logger *slog.Logger) *ChartBuilder {
	return &ChartBuilder{
		layout:     layout,
		classifier: classifier,
		metrics:    metrics,
		logger:     logger,
	}
}

func (b *ChartBuilder) Transform(_ context.Context, ds domain.Dataset) (domain.Chart, error) {
	chart, err := domain.Build(ds, b.layout, b.classifier)
	if err != nil {
		return domain.Chart{}, err
	}

	if skipped := ds.Len() - len(chart.Cells); skipped > 0 {
		b.logger.Warn("records outside the month domain were not drawn", "skipped", skipped)
	}
	for bucket, n := range chart.BucketCounts() {
		b.metrics.CellsByBucket.WithLabelValues(strconv.Itoa(bucket)).Set(float64(n))
	}
	return chart, nil
}
