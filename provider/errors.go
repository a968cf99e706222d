package provider

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for counting backends.
var (
	// ErrUnknownBackend indicates the requested backend is not registered.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrUnavailable indicates the counting service is unavailable.
	ErrUnavailable = errors.New("counting service unavailable")

	// ErrRateLimited indicates the request was rate limited.
	ErrRateLimited = errors.New("rate limited")

	// ErrInvalidRequest indicates the request was rejected as malformed.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrTimeout indicates the request timed out.
	ErrTimeout = errors.New("request timed out")

	// ErrMalformedResponse indicates the response carried no usable count.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrCredentialsNotFound indicates no API key is configured.
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrCredentialsRejected indicates the service refused the API key.
	ErrCredentialsRejected = errors.New("credentials rejected")

	// ErrUnsupportedModel indicates the backend cannot count for the model.
	ErrUnsupportedModel = errors.New("model not supported by backend")
)

// Error wraps backend errors with context.
type Error struct {
	Backend   string // Backend name ("openai", "relay", etc.)
	Op        string // Operation that failed ("count")
	Err       error  // Underlying error
	Retryable bool   // Whether the error is likely transient
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Backend != "" {
		return fmt.Sprintf("%s %s: %v", e.Backend, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new backend error.
func NewError(backend, op string, err error, retryable bool) *Error {
	return &Error{
		Backend:   backend,
		Op:        op,
		Err:       err,
		Retryable: retryable,
	}
}

// IsRetryable checks if an error is likely transient and worth retrying.
func IsRetryable(err error) bool {
	var backendErr *Error
	if errors.As(err, &backendErr) {
		return backendErr.Retryable
	}

	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, context.DeadlineExceeded)
}

// IsAuthError checks if an error is authentication-related.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrCredentialsNotFound) ||
		errors.Is(err, ErrCredentialsRejected)
}

// ErrorForStatus maps an HTTP status code to a sentinel error.
// It returns nil for 2xx codes. Use IsRetryable on the result to decide
// whether the failure is transient.
func ErrorForStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == 401 || status == 403:
		return ErrCredentialsRejected
	case status == 408:
		return ErrTimeout
	case status == 429:
		return ErrRateLimited
	case status >= 500:
		return ErrUnavailable
	default:
		return ErrInvalidRequest
	}
}
