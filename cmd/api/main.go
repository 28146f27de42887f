package main

import (
	"context"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"eksapi/internal/config"
	"eksapi/internal/database"
	handlers "eksapi/internal/http/handler"
	"eksapi/internal/logging"
	"eksapi/internal/otel"
	"eksapi/internal/service"
	"eksapi/internal/storage"
)

// @title EKS API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger, err := logging.New(cfg.Env, cfg.Location())
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}

	// Optional readiness dependencies, checked by /health
	var deps []handlers.Pinger
	if cfg.Database.Enabled() {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		deps = append(deps, db)
	}
	if cfg.MinIO.Enabled() {
		bucket, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			logger.Fatal("failed to initialize object storage", zap.Error(err))
		}
		logger.Info("object storage readiness enabled",
			zap.String("endpoint", cfg.MinIO.Endpoint),
			zap.String("bucket", bucket.Name()),
		)
		deps = append(deps, bucket)
	}

	var reg *prometheus.Registry
	if cfg.MetricsEnabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	app, err := newApp(cfg, logger, reg, service.NewResourceService(), deps...)
	if err != nil {
		logger.Fatal("failed to build app", zap.Error(err))
	}

	addr := ":" + cfg.Port
	listenErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting",
			zap.String("addr", addr),
			zap.String("base_path", cfg.BasePath()),
			zap.Int("readiness_deps", len(deps)),
		)
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		logger.Error("failed to start server", zap.Error(err))
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			logger.Error("http server shutdown", zap.Error(err))
		}
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Error("tracer shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
