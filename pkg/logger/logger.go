// Package logger defines the structured logging interface for the Praxis GRC
// analytics service. The production implementation lives in
// internal/infrastructure/monitoring and is backed by zap.
package logger

import "context"

// Fields is a set of structured key/value pairs attached to a log entry.
type Fields map[string]interface{}

// Logger is the context-aware structured logging interface used by all layers.
// Implementations are expected to enrich entries with trace and tenant
// identifiers carried in the context.
type Logger interface {
	// Debug logs a debug message
	Debug(ctx context.Context, msg string, fields ...Fields)

	// Info logs an informational message
	Info(ctx context.Context, msg string, fields ...Fields)

	// Warn logs a warning message
	Warn(ctx context.Context, msg string, fields ...Fields)

	// Error logs an error message with its cause
	Error(ctx context.Context, msg string, err error, fields ...Fields)

	// Fatal logs a critical message and terminates the process
	Fatal(ctx context.Context, msg string, err error, fields ...Fields)

	// WithFields returns a derived logger carrying additional base fields
	WithFields(fields Fields) Logger

	// WithComponent returns a derived logger tagged with a component name
	WithComponent(component string) Logger
}
