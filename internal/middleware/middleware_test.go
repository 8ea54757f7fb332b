package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wil-ckaew/taskdocs/internal/config"
	"github.com/wil-ckaew/taskdocs/internal/errs"
	"github.com/wil-ckaew/taskdocs/internal/server"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewGlobalMiddlewares(newTestServer()).GlobalErrorHandler(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		status  string
		message string
	}{
		{
			name:    "envelope passes through",
			err:     errs.NewNotFoundError("Task not found: x"),
			code:    http.StatusNotFound,
			status:  errs.StatusNotFound,
			message: "Task not found: x",
		},
		{
			name:    "unknown route",
			err:     echo.ErrNotFound,
			code:    http.StatusNotFound,
			status:  errs.StatusFail,
			message: "Route not found",
		},
		{
			name:    "method not allowed",
			err:     echo.ErrMethodNotAllowed,
			code:    http.StatusMethodNotAllowed,
			status:  errs.StatusFail,
			message: "Method not allowed",
		},
		{
			name:    "echo client error",
			err:     echo.NewHTTPError(http.StatusUnsupportedMediaType, "Unsupported Media Type"),
			code:    http.StatusUnsupportedMediaType,
			status:  errs.StatusFail,
			message: "Unsupported Media Type",
		},
		{
			name:    "stray no rows",
			err:     errors.Wrap(pgx.ErrNoRows, "get task"),
			code:    http.StatusNotFound,
			status:  errs.StatusFail,
			message: "Resource not found",
		},
		{
			name: "unique violation",
			err: &pgconn.PgError{
				Code:           "23505",
				TableName:      "documents",
				ConstraintName: "documents_filename_key",
			},
			code:   http.StatusConflict,
			status: errs.StatusFail,
		},
		{
			name:    "anything else",
			err:     errors.New("boom"),
			code:    http.StatusInternalServerError,
			status:  errs.StatusError,
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := renderError(t, tt.err)

			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.status, body["status"])
			if tt.message != "" {
				assert.Equal(t, tt.message, body["message"])
			} else {
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	notFound := errs.NewFailError(http.StatusNotFound, "Task not found").Wrap(errors.Wrap(pgx.ErrNoRows, "get task"))
	assert.Equal(t, "NOT_FOUND", errorCode(notFound, notFound))

	plain := errs.NewBadRequestError("Validation failed", nil)
	assert.Equal(t, "BAD_REQUEST", errorCode(plain, plain))
}

func TestGetLoggerFallback(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.NotNil(t, GetLogger(c))
	assert.Equal(t, "", GetRequestID(c))
}

func TestMemoryRateLimiterStore(t *testing.T) {
	store := NewMemoryRateLimiterStore(config.RateLimitConfig{Enabled: true, Requests: 2, Window: time.Minute})

	for i := 0; i < 2; i++ {
		allowed, err := store.Allow("192.0.2.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := store.Allow("192.0.2.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = store.Allow("192.0.2.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiterStoreFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	logger := zerolog.Nop()
	store := NewRedisRateLimiterStore(client, config.RateLimitConfig{Enabled: true, Requests: 1, Window: time.Second}, &logger)

	allowed, err := store.Allow("192.0.2.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	mw := NewRateLimitMiddleware(newTestServer()).Limit()

	called := 0
	next := mw(func(c echo.Context) error {
		called++
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()
	for i := 0; i < 5; i++ {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		require.NoError(t, next(c))
	}
	assert.Equal(t, 5, called)
}
