package errs

import "strings"

// Envelope statuses.
const (
	StatusError    = "error"
	StatusFail     = "fail"
	StatusNotFound = "not found"
)

// FieldError is a field-level validation error.
//
//	{ "field": "title", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error envelope.
//
// Code is the HTTP status code and Kind a machine readable label used in
// logs (e.g. "NOT_FOUND"); neither is serialized.
type HTTPError struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`

	Code  int    `json:"-"`
	Kind  string `json:"-"`
	cause error
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the storage or driver error the envelope was built from.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Wrap records cause on e and returns e.
func (e *HTTPError) Wrap(cause error) *HTTPError {
	e.cause = cause
	return e
}

// Is reports whether target is also an *HTTPError, regardless of contents.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
