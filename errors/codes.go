package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors (not retryable)
const (
	// ErrCodeMissingConfig indicates a required configuration value is absent.
	ErrCodeMissingConfig ErrorCode = "MISSING_CONFIG"
	// ErrCodeInvalidConfig indicates a configuration value failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Connection errors
const (
	// ErrCodeConnectionFailed indicates the Redis server could not be reached.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeNotConnected indicates an operation was issued after disconnect.
	ErrCodeNotConnected ErrorCode = "NOT_CONNECTED"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeNotConnected:     false,
	ErrCodeMissingConfig:    false,
	ErrCodeInvalidConfig:    false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
