package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the structured error type returned by rediskit.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with automatic retryable detection.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// CodeOf extracts the ErrorCode from err, or "" if err is not an *Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}

// --- Common Error Constructors ---

// MissingConfig creates a new Error for a missing configuration value.
func MissingConfig(field string) *Error {
	return &Error{
		Code: ErrCodeMissingConfig, Message: fmt.Sprintf("Missing required configuration: %s", field),
		Retryable: false,
		Details:   map[string]any{"field": field},
	}
}

// InvalidConfig creates a new Error for an invalid configuration value.
func InvalidConfig(field, reason string) *Error {
	return &Error{
		Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("Invalid configuration for %s: %s", field, reason),
		Retryable: false,
		Details:   map[string]any{"field": field},
	}
}

// ConnectionFailed creates a new Error for a failed connection to the Redis server.
func ConnectionFailed(addr string, cause error) *Error {
	return &Error{
		Code: ErrCodeConnectionFailed, Message: fmt.Sprintf("Unable to connect to Redis at %s.", addr),
		Retryable: true, Cause: cause,
		Details: map[string]any{"addr": addr},
	}
}

// NotConnected creates a new Error for an operation issued on a closed client.
func NotConnected() *Error {
	return &Error{
		Code: ErrCodeNotConnected, Message: "Redis connection is closed.",
		Retryable: false,
	}
}
