package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/wil-ckaew/taskdocs/internal/config"
	"github.com/wil-ckaew/taskdocs/internal/errs"
	"github.com/wil-ckaew/taskdocs/internal/server"
)

const (
	rateLimitKeyPrefix = "taskdocs:ratelimit:"
	redisStoreTimeout  = 200 * time.Millisecond
)

// RateLimitMiddleware limits requests per client IP. Counters live in
// redis when it is configured and in process memory otherwise.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns the rate limiting middleware, or a pass-through when
// rate limiting is disabled.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.RateLimit
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	var store middleware.RateLimiterStore
	if r.server.Redis != nil {
		store = NewRedisRateLimiterStore(r.server.Redis, cfg, r.server.Logger)
	} else {
		store = NewMemoryRateLimiterStore(cfg)
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewFailError(http.StatusForbidden, "Unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			rateLimitHits.WithLabelValues(c.Path()).Inc()
			return errs.NewTooManyRequestsError("Rate limit exceeded")
		},
	})
}

// RecordRateLimitHit sends a RateLimitHit custom event to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}

// NewMemoryRateLimiterStore spreads cfg.Requests per cfg.Window evenly as
// a token bucket with a burst of cfg.Requests.
func NewMemoryRateLimiterStore(cfg config.RateLimitConfig) middleware.RateLimiterStore {
	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds()),
		Burst:     cfg.Requests,
		ExpiresIn: 3 * cfg.Window,
	})
}

// RedisRateLimiterStore is a fixed window counter shared by every
// instance that talks to the same redis.
type RedisRateLimiterStore struct {
	client   redis.UniversalClient
	requests int64
	window   time.Duration
	logger   *zerolog.Logger
	now      func() time.Time
}

func NewRedisRateLimiterStore(client redis.UniversalClient, cfg config.RateLimitConfig, logger *zerolog.Logger) *RedisRateLimiterStore {
	return &RedisRateLimiterStore{
		client:   client,
		requests: int64(cfg.Requests),
		window:   cfg.Window,
		logger:   logger,
		now:      time.Now,
	}
}

// Allow counts the request in the current window. When redis cannot be
// reached the request is let through.
func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisStoreTimeout)
	defer cancel()

	window := s.now().UnixNano() / int64(s.window)
	key := fmt.Sprintf("%s%s:%d", rateLimitKeyPrefix, identifier, window)

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, s.window)
		return nil
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Warn().Err(err).Str("identifier", identifier).Msg("rate limit store unavailable")
		}
		return true, nil
	}

	return incr.Val() <= s.requests, nil
}
