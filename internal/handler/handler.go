// Package handler adapts HTTP requests to the service layer.
//
// Every endpoint goes through Handle or HandleNoContent, which bind and
// validate a fresh payload, run the operation inside the request's New
// Relic transaction and write the result. Errors are returned to Echo and
// rendered by the global error handler.
package handler
