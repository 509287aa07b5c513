package pipeline

import (
	"context"
	"sync/atomic"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
)

// ChartStore holds the published chart for concurrent readers.
// It implements Loader.
type ChartStore struct {
	chart atomic.Pointer[domain.Chart]
}

// NewChartStore returns an empty store.
func NewChartStore() *ChartStore {
	return &ChartStore{}
}

// Load publishes chart. Readers see either nothing or the whole chart.
func (s *ChartStore) Load(_ context.Context, chart domain.Chart) error {
	s.chart.Store(&chart)
	return nil
}

// Current returns the published chart, if any. Callers must not modify it.
func (s *ChartStore) Current() (domain.Chart, bool) {
	c := s.chart.Load()
	if c == nil {
		return domain.Chart{}, false
	}
	return *c, true
}
