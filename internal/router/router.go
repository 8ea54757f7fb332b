// Package router builds the Echo instance: middleware chain, error
// handler, the /api resource routes and the system routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/wil-ckaew/taskdocs/internal/handler"
	"github.com/wil-ckaew/taskdocs/internal/middleware"
	"github.com/wil-ckaew/taskdocs/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.Recover(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.Collect(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	api.GET("/healthchecker", h.Health.HealthChecker)
	h.Task.RegisterRoutes(api)
	h.Document.RegisterRoutes(api)

	return router
}
