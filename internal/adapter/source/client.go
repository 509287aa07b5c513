// Package source fetches the monthly temperature anomaly dataset over HTTP.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/jonboulle/clockwork"
)

// ErrUnexpectedStatus is returned for any non-200 response.
var ErrUnexpectedStatus = errors.New("unexpected status")

// maxBodyBytes bounds the document size. The full dataset is about 250 KB.
const maxBodyBytes = 16 << 20

// Client loads the dataset document. It implements pipeline.Extractor.
type Client struct {
	url        string
	httpClient *http.Client
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a dataset client for url.
func NewClient(url string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		clock:   clockwork.NewRealClock(),
		metrics: metrics,
		logger:  logger,
	}
}

// WithClock swaps the time source used to stamp fetched datasets.
func (c *Client) WithClock(clock clockwork.Clock) *Client {
	c.clock = clock
	return c
}

// Fetch downloads and decodes the dataset. It makes exactly one request.
func (c *Client) Fetch(ctx context.Context) (domain.Dataset, error) {
	start := c.clock.Now()
	ds, err := c.fetch(ctx)
	c.metrics.FetchDuration.Observe(c.clock.Since(start).Seconds())
	if err != nil {
		c.metrics.FetchErrors.Inc()
		return domain.Dataset{}, err
	}

	c.metrics.DatasetRecords.Set(float64(ds.Len()))
	c.logger.Info("dataset fetched",
		"url", c.url,
		"records", ds.Len(),
		"base_temperature", ds.BaseTemperature(),
	)
	return ds.WithFetchedAt(c.clock.Now()), nil
}

func (c *Client) fetch(ctx context.Context) (domain.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("dataset request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Dataset{}, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, body)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read response: %w", err)
	}

	return domain.DecodeDataset(body)
}
