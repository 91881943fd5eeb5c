package server

import (
	"errors"
	"net/http"
)

// apiError pairs an HTTP status and a client-safe message with the
// internal cause. The cause is logged, never sent to the caller.
type apiError struct {
	status  int
	code    string
	message string
	err     error
}

func (e apiError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.message
}

func (e apiError) Unwrap() error {
	return e.err
}

func makeAPIError(status int, code, message string, err error) error {
	var existing apiError
	if errors.As(err, &existing) && existing.status != 0 {
		return existing
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return apiError{status: status, code: code, message: message, err: err}
}

// validationError rejects bad or missing input before any side effect.
func validationError(message string) error {
	return makeAPIError(http.StatusBadRequest, "invalid_argument", message, nil)
}

func notFound(message string) error {
	return makeAPIError(http.StatusNotFound, "not_found", message, nil)
}

func conflict(message string) error {
	return makeAPIError(http.StatusConflict, "conflict", message, nil)
}

// invalidCredentials is deliberately generic: unknown username, wrong
// password, and bad tokens all produce this same status and message.
func invalidCredentials() error {
	return makeAPIError(http.StatusUnauthorized, "unauthorized", "Invalid credentials", nil)
}

// storageError wraps a blob or database failure. message is what the
// caller sees; err carries the driver detail for the log only.
func storageError(message string, err error) error {
	return makeAPIError(http.StatusInternalServerError, "storage", message, err)
}

func httpStatusFromError(err error) int {
	var ae apiError
	if errors.As(err, &ae) && ae.status != 0 {
		return ae.status
	}
	return http.StatusInternalServerError
}
