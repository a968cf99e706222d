package provider

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	err := NewError("relay", "count", ErrRateLimited, true)
	assert.Equal(t, "relay count: rate limited", err.Error())

	anon := &Error{Op: "count", Err: ErrTimeout}
	assert.Equal(t, "count: request timed out", anon.Error())
}

func TestError_Unwrap(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewError("openai", "count", ErrMalformedResponse, false))

	assert.ErrorIs(t, err, ErrMalformedResponse)

	var backendErr *Error
	assert.True(t, errors.As(err, &backendErr))
	assert.Equal(t, "openai", backendErr.Backend)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"retryable backend error", NewError("x", "count", errors.New("boom"), true), true},
		{"non-retryable backend error", NewError("x", "count", ErrRateLimited, false), false},
		{"rate limited", ErrRateLimited, true},
		{"unavailable", fmt.Errorf("dial: %w", ErrUnavailable), true},
		{"timeout", ErrTimeout, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"malformed", ErrMalformedResponse, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(ErrCredentialsNotFound))
	assert.True(t, IsAuthError(NewError("relay", "count", ErrCredentialsRejected, false)))
	assert.False(t, IsAuthError(ErrUnavailable))
}

func TestErrorForStatus(t *testing.T) {
	tests := []struct {
		status    int
		want      error
		retryable bool
	}{
		{200, nil, false},
		{204, nil, false},
		{400, ErrInvalidRequest, false},
		{401, ErrCredentialsRejected, false},
		{403, ErrCredentialsRejected, false},
		{404, ErrInvalidRequest, false},
		{408, ErrTimeout, true},
		{429, ErrRateLimited, true},
		{500, ErrUnavailable, true},
		{503, ErrUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := ErrorForStatus(tt.status)
			assert.Equal(t, tt.want, err)
			assert.Equal(t, tt.retryable, IsRetryable(err))
		})
	}
}
