package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wil-ckaew/taskdocs/internal/handler"
)

func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckStatus)
	r.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
