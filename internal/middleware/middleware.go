// Package middleware holds the Echo middleware chain: request ids,
// request scoped loggers, New Relic tracing, Prometheus metrics, rate
// limiting, and the global error handler that renders every failure as
// a JSON envelope.
package middleware
