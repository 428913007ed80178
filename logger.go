package wlru

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cache-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// WithWeight adds a weight field to the logger.
func (l *Logger) WithWeight(weight int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("weight", weight),
	}
}

// LogPut logs a put operation.
func (l *Logger) LogPut(weight int64, evicted int, err error) {
	if err != nil {
		l.Error("put failed",
			"weight", weight,
			"error", err,
		)
	} else {
		l.Debug("put completed",
			"weight", weight,
			"evicted", evicted,
		)
	}
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(found bool) {
	l.Debug("remove completed", "found", found)
}
