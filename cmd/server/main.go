package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/geoanla/internal/application"
	"github.com/JonMunkholm/geoanla/internal/config"
	"github.com/JonMunkholm/geoanla/internal/core"
	"github.com/JonMunkholm/geoanla/internal/logging"
	"github.com/JonMunkholm/geoanla/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"database", cfg.Database.Enabled(),
		"max_concurrent", cfg.Validation.MaxConcurrent,
		"chunk_size", cfg.Validation.ChunkSize,
		"metrics", cfg.Metrics.Enabled,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := application.New(ctx, cfg,
		application.WithLogger(logger),
		application.WithRegisterer(prometheus.DefaultRegisterer),
	)
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	opts := []web.Option{web.WithGatherer(prometheus.DefaultGatherer)}
	if app.Elevation != nil {
		opts = append(opts, web.WithElevation(app.Elevation))
	}
	server := web.NewServer(app.Service, cfg, opts...)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Service.StartResultJanitor(gctx, core.RetentionConfig{
			MaxAge:        cfg.Results.MaxAge,
			CheckInterval: cfg.Results.CheckInterval,
		})
		return nil
	})

	g.Go(func() error {
		if err := server.Start(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Wait for running validations to complete (with timeout)
		if status := app.Service.Limiter().Status(); status.Active > 0 {
			logger.Info("waiting for validations to complete", "active", status.Active)
			if err := app.Service.Limiter().WaitForDrain(shutdownCtx); err != nil {
				logger.Warn("validations did not complete in time", "error", err)
			} else {
				logger.Info("all validations completed")
			}
		}

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
