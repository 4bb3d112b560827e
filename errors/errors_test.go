package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := MissingConfig("REDIS_ADDR")
	if !strings.Contains(err.Error(), "MISSING_CONFIG") {
		t.Errorf("expected code in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "REDIS_ADDR") {
		t.Errorf("expected field in message, got %q", err.Error())
	}
}

func TestErrorStringWithCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := ConnectionFailed("localhost:6379", cause)
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := ConnectionFailed("localhost:6379", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to match the cause")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(InvalidConfig("REDIS_PORT", "not an integer")); got != ErrCodeInvalidConfig {
		t.Errorf("expected INVALID_CONFIG, got %s", got)
	}
	if got := CodeOf(fmt.Errorf("plain error")); got != "" {
		t.Errorf("expected empty code for plain error, got %s", got)
	}
	wrapped := fmt.Errorf("outer: %w", NotConnected())
	if got := CodeOf(wrapped); got != ErrCodeNotConnected {
		t.Errorf("expected NOT_CONNECTED through wrapping, got %s", got)
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		err  *Error
		want bool
	}{
		{MissingConfig("REDIS_ADDR"), false},
		{InvalidConfig("REDIS_PORT", "bad"), false},
		{ConnectionFailed("localhost:6379", nil), true},
		{NotConnected(), false},
	}
	for _, tc := range cases {
		if tc.err.Retryable != tc.want {
			t.Errorf("%s: expected retryable=%v", tc.err.Code, tc.want)
		}
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeConnectionFailed, "boom").WithDetail("attempt", 2)
	if err.Details["attempt"] != 2 {
		t.Errorf("expected detail to be set, got %v", err.Details)
	}
	if !err.Retryable {
		t.Error("expected New to derive retryable from code")
	}
}
