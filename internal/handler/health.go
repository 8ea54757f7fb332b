package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wil-ckaew/taskdocs/internal/middleware"
	"github.com/wil-ckaew/taskdocs/internal/model"
	"github.com/wil-ckaew/taskdocs/internal/server"
)

const healthCheckMessage = "Health check: API is up and running smoothly."

type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// HealthChecker is the static liveness answer; it touches no dependency.
func (h *HealthHandler) HealthChecker(c echo.Context) error {
	return c.JSON(http.StatusOK, model.MessageResponse{
		Status:  model.StatusSuccess,
		Message: healthCheckMessage,
	})
}

type dependencyStatus struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type statusResponse struct {
	Status      string                      `json:"status"`
	Timestamp   time.Time                   `json:"timestamp"`
	Environment string                      `json:"environment"`
	Checks      map[string]dependencyStatus `json:"checks"`
}

// CheckStatus pings the configured dependencies. A database failure makes
// the service unhealthy (503); a redis failure is reported but tolerated
// since rate limiting degrades to in-memory counters.
func (h *HealthHandler) CheckStatus(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	cfg := h.server.Config.Observability.HealthChecks
	response := statusResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]dependencyStatus),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.Timeout)
	defer cancel()

	if h.server.Config.Observability.HasCheck("database") && h.server.DB != nil {
		result := h.probe(ctx, logger, "database", h.server.DB.Pool.Ping)
		response.Checks["database"] = result
		if result.Error != "" {
			response.Status = "unhealthy"
		}
	}

	if h.server.Config.Observability.HasCheck("redis") && h.server.Redis != nil {
		response.Checks["redis"] = h.probe(ctx, logger, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if response.Status != "healthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")
		h.recordHealthEvent("overall", time.Since(start), "")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) probe(ctx context.Context, logger zerolog.Logger, name string, ping func(context.Context) error) dependencyStatus {
	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("dependency health check failed")
		h.recordHealthEvent(name, elapsed, err.Error())

		return dependencyStatus{
			Status:       "unhealthy",
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}
	}

	return dependencyStatus{Status: "healthy", ResponseTime: elapsed.String()}
}

func (h *HealthHandler) recordHealthEvent(check string, elapsed time.Duration, message string) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}
	app.RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":       check,
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    message,
	})
}
