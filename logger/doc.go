// Package logger provides structured logging for rediskit built on zerolog,
// with console and JSON output formats and component tagging.
package logger
