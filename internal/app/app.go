// Package app wires configuration, logging, tracing and metrics together and
// hands out instrumented galleries.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"gallery/internal/config"
	"gallery/internal/logging"
	"gallery/internal/metrics"
	"gallery/internal/otel"
	"gallery/internal/service"
)

// App holds the shared ambient components.
type App struct {
	Logger   *slog.Logger
	Metrics  *metrics.Prometheus
	shutdown otel.ShutdownFunc
}

// Setup builds the logger (writing to w), tracing and metrics (registered on reg).
func Setup(ctx context.Context, cfg *config.AppConfig, w io.Writer, reg prometheus.Registerer) (*App, error) {
	logger := logging.New(w, cfg.Log, cfg.Location()).With("service", cfg.ServiceName)

	shutdown, err := otel.Init(ctx, cfg.Tracing, logger)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	m, err := metrics.NewPrometheus(reg, cfg.Metrics.Namespace)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	return &App{Logger: logger, Metrics: m, shutdown: shutdown}, nil
}

// OpenGallery validates and constructs a gallery wired to the app's logger and metrics.
func (a *App) OpenGallery(ctx context.Context, name, city string, areaSqM float64, openToPublic bool) (service.GalleryService, error) {
	return service.Open(ctx, name, city, areaSqM, openToPublic,
		service.WithLogger(a.Logger),
		service.WithRecorder(a.Metrics),
	)
}

// Shutdown flushes pending spans.
func (a *App) Shutdown(ctx context.Context) error {
	return a.shutdown(ctx)
}
