package logger

import "context"

// Logger defines the leveled, printf-style logging used across the pipeline.
// Every method takes the request context so run-scoped fields follow the call.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
