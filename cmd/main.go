package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/okian/courtside/internal/adapters/http/api"
	"github.com/okian/courtside/internal/adapters/http/swagger"
	"github.com/okian/courtside/internal/adapters/repository"
	service "github.com/okian/courtside/internal/app"
	"github.com/okian/courtside/internal/config"
	"github.com/okian/courtside/internal/dataset"
	"github.com/okian/courtside/internal/domain/conference"
	"github.com/okian/courtside/pkg/logger"
	"github.com/okian/courtside/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 10 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	// Local development convenience; a missing .env file is fine.
	_ = godotenv.Load()

	// Disable default Go metrics collection to avoid duplicate metrics
	// We collect our own custom system metrics instead
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Load the play-by-play snapshot once at startup.
	loader := dataset.New(
		dataset.WithTimeout(time.Duration(cfg.LoadTimeoutSeconds) * time.Second),
	)
	loadStart := time.Now()
	events, err := loader.Load(ctx, cfg.Source())
	if err != nil {
		metrics.RecordDatasetLoadError()
		loggerInstance.Error(ctx, "failed to load dataset", logger.String("source", cfg.Source()), logger.Error(err))
		return
	}
	metrics.RecordDatasetLoadDuration(time.Since(loadStart).Seconds())

	store := repository.NewMemStore(ctx, events)
	if store.Len(ctx) == 0 {
		loggerInstance.Error(ctx, "refusing to start", logger.String("source", cfg.Source()), logger.Error(repository.ErrEmptySnapshot))
		return
	}
	metrics.UpdateDatasetRows(store.Len(ctx))
	metrics.UpdateDatasetGames(store.Games(ctx))
	loggerInstance.Info(ctx, "dataset loaded",
		logger.String("source", cfg.Source()),
		logger.Int("rows", store.Len(ctx)),
		logger.Int("games", store.Games(ctx)),
	)

	conferences := conference.Default()
	if len(cfg.Conferences) > 0 {
		conferences = conference.New(cfg.Conferences)
	}

	svc, err := service.New(
		service.WithLogger(loggerInstance),
		service.WithStore(store),
		service.WithConferences(conferences),
		service.WithTopScorersLimit(cfg.TopScorersLimit),
	)
	if err != nil {
		os.Stderr.WriteString("failed to build service: " + err.Error() + "\n")
		return
	}

	// Start system metrics updater
	go startSystemMetricsUpdater(ctx)

	// HTTP router and routes.
	router := mux.NewRouter()

	// Register API docs under /api-docs
	swagger.Register(ctx, router)

	// Register business API routes with the service dependency.
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, router)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
