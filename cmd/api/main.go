package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"plateperfect/internal/catalog"
	"plateperfect/internal/config"
	"plateperfect/internal/handler"
	"plateperfect/internal/metrics"
	"plateperfect/internal/middleware"
	"plateperfect/internal/repository"
	"plateperfect/internal/router"
	"plateperfect/internal/service"
	"plateperfect/internal/stream"

	"github.com/rs/zerolog"
)

// streamBuffer is the number of pending summaries each change feed subscriber may queue.
const streamBuffer = 16

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting plateperfect API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the predefined dish catalog
	dishes := loadCatalog(ctx, cfg, logger)

	// Initialize metrics and the change feed
	var (
		collector *metrics.Collector
		recorder  service.Recorder
		requests  middleware.RequestRecorder
	)
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		recorder = collector
		requests = collector
	}
	hub := stream.NewHub(streamBuffer, logger)

	// Initialize the app instance
	services := service.New(service.Options{
		Repository:     repository.NewMenuRepository(logger),
		Catalog:        dishes,
		Recorder:       recorder,
		Publisher:      hub,
		CurrencySymbol: cfg.Menu.CurrencySymbol,
		MaxIDAttempts:  cfg.Menu.IDMaxAttempts,
	}, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Session: handler.NewSessionHandler(services.Session, logger),
		Menu:    handler.NewMenuHandler(services.Menu, hub, logger),
		Catalog: handler.NewCatalogHandler(services.Browser, logger),
	}
	if collector != nil {
		handlers.Metrics = collector.Handler()
	}

	// Initialize router
	mux := router.New(handlers, requests, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Int("catalog_dishes", dishes.Size()).
			Bool("metrics_enabled", cfg.Metrics.Enabled).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadCatalog reads the configured catalog documents from S3 or the local file system,
// using the built-in catalog when none is configured or loading fails.
func loadCatalog(ctx context.Context, cfg *config.Config, logger zerolog.Logger) catalog.Catalog {
	if len(cfg.Catalog.Paths) == 0 {
		logger.Info().Msg("using built-in catalog (no CATALOG_PATH)")
		return catalog.Default()
	}

	fileLoader := catalog.NewFileLoader(logger)
	var s3Loader catalog.Loader

	if cfg.S3.Enabled {
		l, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	} else {
		logger.Info().Msg("using local file system for catalog (S3 disabled)")
	}

	loader := catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)

	c, err := catalog.LoadAll(ctx, loader, cfg.Catalog.Paths, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Strs("paths", cfg.Catalog.Paths).
			Msg("failed to load catalog, using built-in catalog")
		return catalog.Default()
	}

	return c
}
