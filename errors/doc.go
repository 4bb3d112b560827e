// Package errors provides structured error types for rediskit with
// machine-readable error codes and retryable detection.
package errors
