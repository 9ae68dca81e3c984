// Command server starts the event-scheduling HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tomocode/my-schedule-app/internal/auth"
	"github.com/tomocode/my-schedule-app/internal/config"
	"github.com/tomocode/my-schedule-app/internal/metrics"
	"github.com/tomocode/my-schedule-app/internal/migrate"
	"github.com/tomocode/my-schedule-app/internal/repository/postgres"
	"github.com/tomocode/my-schedule-app/internal/server/httpapi"
	"github.com/tomocode/my-schedule-app/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and serves the API until a
// termination signal arrives.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// One process-scoped pool; handlers receive it through the repository,
	// never reconstruct clients per request.
	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()

	eventRepo := postgres.NewEventRepo(db)
	eventSvc := service.NewEventService(eventRepo)
	gate := auth.NewGate([]byte(cfg.SessionSecret))
	met := metrics.New()

	api := httpapi.New(logger, eventSvc, gate, db, met)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
