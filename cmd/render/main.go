// Command render fetches the temperature dataset once and writes the heatmap
// to a file, without starting a server.
//
// Usage:
//
//	go run ./cmd/render -out heatmap.svg
//	go run ./cmd/render -format png -out heatmap.png
//	go run ./cmd/render -dataset testdata/global-temperature-sample.json -out sample.html -format html
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/adapter/file"
	"github.com/couchcryptid/temperature-heatmap/internal/adapter/source"
	"github.com/couchcryptid/temperature-heatmap/internal/config"
	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/pipeline"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	url := flag.String("url", config.DefaultDatasetURL, "dataset URL")
	dataset := flag.String("dataset", "", "local dataset JSON file; overrides -url")
	out := flag.String("out", "", "output path")
	format := flag.String("format", string(render.FormatSVG), "output format: svg, html or png")
	timeout := flag.Duration("timeout", 10*time.Second, "fetch timeout")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	metrics := observability.NewMetricsForTesting()

	var extractor pipeline.Extractor = source.NewClient(*url, *timeout, metrics, logger)
	if *dataset != "" {
		extractor = fileExtractor(*dataset)
	}

	writer, err := file.NewWriter(*out, render.Format(*format), metrics, logger)
	if err != nil {
		return err
	}

	transformer := pipeline.NewTransformer(domain.DefaultLayout(), domain.NewClassifier(), metrics, logger)
	p := pipeline.New(extractor, transformer, logger, metrics, writer)

	return p.Run(context.Background())
}

// fileExtractor reads a dataset document from disk.
type fileExtractor string

func (f fileExtractor) Fetch(_ context.Context) (domain.Dataset, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	return domain.DecodeDataset(data)
}
