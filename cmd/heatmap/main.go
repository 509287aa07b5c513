package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/temperature-heatmap/internal/adapter/file"
	httpadapter "github.com/couchcryptid/temperature-heatmap/internal/adapter/http"
	"github.com/couchcryptid/temperature-heatmap/internal/adapter/source"
	"github.com/couchcryptid/temperature-heatmap/internal/config"
	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/pipeline"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := source.NewClient(cfg.DatasetURL, cfg.FetchTimeout, metrics, logger)
	transformer := pipeline.NewTransformer(domain.DefaultLayout(), domain.NewClassifier(), metrics, logger)
	store := pipeline.NewChartStore()

	loaders := []pipeline.Loader{store}
	if cfg.OutputPath != "" {
		w, err := file.NewWriter(cfg.OutputPath, render.Format(cfg.OutputFormat), metrics, logger)
		if err != nil {
			logger.Error("failed to create output writer", "error", err)
			os.Exit(1)
		}
		loaders = append(loaders, w)
		logger.Info("file output enabled", "path", cfg.OutputPath, "format", cfg.OutputFormat)
	}

	p := pipeline.New(client, transformer, logger, metrics, loaders...)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, store, cfg.CORSOrigins, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Build the heatmap once. On failure the server stays up but never becomes ready.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
