// Package errs defines the error envelope returned to API clients.
//
// Every failed request answers with a JSON object carrying a `status`
// ("error", "fail" or "not found") and a human readable `message`.
// HTTPError is that envelope; it also satisfies error so handlers and
// middleware can return it up to the global error handler.
package errs
