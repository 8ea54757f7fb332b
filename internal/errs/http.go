package errs

import (
	"net/http"
)

func newHTTPError(code int, status, message string) *HTTPError {
	return &HTTPError{
		Status:  status,
		Message: message,
		Code:    code,
		Kind:    MakeUpperCaseWithUnderscores(http.StatusText(code)),
	}
}

// NewBadRequestError creates a 400 "fail" envelope, optionally with
// per-field errors.
func NewBadRequestError(message string, errors []FieldError) *HTTPError {
	e := newHTTPError(http.StatusBadRequest, StatusFail, message)
	e.Errors = errors
	return e
}

// NewFailError creates a "fail" envelope with an arbitrary status code.
// Point lookups and deletes that match nothing use it with 404.
func NewFailError(code int, message string) *HTTPError {
	return newHTTPError(code, StatusFail, message)
}

// NewNotFoundError creates a 404 "not found" envelope, the answer to an
// update whose target does not exist.
func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, StatusNotFound, message)
}

// NewInternalServerError creates a 500 "error" envelope.
//
// The message is sent to the client verbatim and usually embeds the
// underlying database error. That keeps the published API contract but
// discloses internals; callers that must not leak should pass a
// generic message.
func NewInternalServerError(message string) *HTTPError {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}
	return newHTTPError(http.StatusInternalServerError, StatusError, message)
}

// NewTooManyRequestsError creates a 429 "fail" envelope.
func NewTooManyRequestsError(message string) *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, StatusFail, message)
}
