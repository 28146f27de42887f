package main

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	_ "eksapi/docs"
	"eksapi/internal/config"
	handlers "eksapi/internal/http/handler"
	"eksapi/internal/http/middleware"
	"eksapi/internal/service"
)

// newApp wires middleware and routes. A nil reg disables request metrics and /metrics.
func newApp(cfg *config.AppConfig, logger *zap.Logger, reg *prometheus.Registry, svc service.ResourceService, deps ...handlers.Pinger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               "eksapi",
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(logger))

	if reg != nil {
		prom, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			return nil, err
		}
		app.Use(prom.Handler())
		handlers.RegisterMetrics(app, reg)
	}

	// Innermost, so panics reach the logger and metrics as a 500 error.
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.Error("panic_recovered",
				zap.String("request_id", requestID(c)),
				zap.Any("panic", e),
				zap.Stack("stack"),
			)
		},
	}))

	handlers.RegisterRoutes(app, cfg.BasePath(), svc, deps...)

	// Host is left empty so the UI targets whichever host served it.
	app.Get("/swagger/*", swagger.HandlerDefault)

	return app, nil
}

func requestID(c *fiber.Ctx) string {
	rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return rid
}
