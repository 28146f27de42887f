package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eksapi/internal/http/middleware"
	"eksapi/internal/service"
)

// RegisterRoutes attaches the probes and the resource routes under basePath (e.g. /api/eks).
// deps are the readiness dependencies checked by /health.
func RegisterRoutes(app *fiber.App, basePath string, svc service.ResourceService, deps ...Pinger) {
	app.Get("/health", HealthCheck(deps...))
	app.Get("/healthz", LivenessProbe())

	r := app.Group(basePath)
	r.Get("", ListResources(svc))
	r.Post("", CreateResource(svc))
	r.Get("/:id", GetResource(svc))
	r.Put("/:id", UpdateResource(svc))
	r.Delete("/:id", DeleteResource(svc))
}

// RegisterMetrics exposes the collectors of g in the Prometheus text format.
func RegisterMetrics(app *fiber.App, g prometheus.Gatherer) {
	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
}
