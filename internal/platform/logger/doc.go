// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Capture builds a logger over an in-memory buffer for tests
// that assert on what was logged.
package logger
