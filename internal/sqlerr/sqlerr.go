// Package sqlerr classifies PostgreSQL driver errors.
//
// KindOf sorts an error into the storage taxonomy the handlers map to
// status codes (not found, constraint violation, connectivity failure).
// HandleError is the fallback that turns an unclassified error into an
// envelope with a readable message.
package sqlerr
