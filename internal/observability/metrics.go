package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for fetching and rendering the heatmap.
type Metrics struct {
	FetchDuration  prometheus.Histogram
	FetchErrors    prometheus.Counter
	DatasetRecords prometheus.Gauge
	PipelineReady  prometheus.Gauge

	// Rendering metrics.
	CellsByBucket   *prometheus.GaugeVec   // labels: bucket={0..8}
	Renders         *prometheus.CounterVec // labels: format={svg,html,png,json}, outcome={success,error}
	RenderDuration  *prometheus.HistogramVec
	TooltipRequests prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.FetchDuration,
		m.FetchErrors,
		m.DatasetRecords,
		m.PipelineReady,
		m.CellsByBucket,
		m.Renders,
		m.RenderDuration,
		m.TooltipRequests,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid "already
// registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "temperature_heatmap",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of the dataset fetch.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "temperature_heatmap",
			Name:      "fetch_errors_total",
			Help:      "Dataset fetch or decode failures.",
		}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "temperature_heatmap",
			Name:      "dataset_records",
			Help:      "Number of monthly records in the loaded dataset.",
		}),
		PipelineReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "temperature_heatmap",
			Name:      "pipeline_ready",
			Help:      "1 once the heatmap has been built and published, 0 otherwise.",
		}),
		CellsByBucket: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "temperature_heatmap",
			Name:      "cells",
			Help:      "Heatmap cells per color bucket.",
		}, []string{"bucket"}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "temperature_heatmap",
			Name:      "renders_total",
			Help:      "Rendered outputs by format and outcome.",
		}, []string{"format", "outcome"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "temperature_heatmap",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering one output.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"format"}),
		TooltipRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "temperature_heatmap",
			Name:      "tooltip_requests_total",
			Help:      "Hover lookups served by the tooltip endpoint.",
		}),
	}
}
