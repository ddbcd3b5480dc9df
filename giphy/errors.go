package giphy

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrMissingAPIKey indicates the client was constructed without an API key
var ErrMissingAPIKey = errors.New("giphy API key is required")

// ValidationError indicates invalid caller input. It is raised before any
// network attempt and is never retried.
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// APIError represents a failure reported by the Giphy API, either as an HTTP
// status or as a non-200 meta.status inside an HTTP 200 envelope.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("giphy API error: status %d: %s", e.StatusCode, e.Message)
}

// IsClientError checks if the error carries a 4xx status
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError checks if the error carries a 5xx status
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// Classify maps an error to a Failure with exactly one ErrorKind, preserving
// the original message and tagging the operation that produced it.
//
// The order matters: timeouts must be recognized before generic transport
// faults, because the transport error chain wraps the deadline error.
func Classify(err error, operation string) Failure {
	f := Failure{
		Kind:       KindUnknown,
		Message:    err.Error(),
		Operation:  operation,
		OccurredAt: time.Now(),
	}

	var validationErr *ValidationError
	var apiErr *APIError
	var netErr net.Error

	switch {
	case errors.As(err, &validationErr):
		f.Kind = KindValidation
	case errors.Is(err, context.DeadlineExceeded):
		f.Kind = KindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		f.Kind = KindTimeout
	case errors.As(err, &apiErr):
		switch {
		case apiErr.IsClientError():
			f.Kind = KindClientError
		case apiErr.IsServerError():
			f.Kind = KindServerError
		}
	case errors.As(err, &netErr):
		f.Kind = KindNetworkError
	}

	return f
}
