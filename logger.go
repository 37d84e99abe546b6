package carvecache

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with carvecache-specific field helpers so
// that sessions, strategies and trials are tagged consistently.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler
// is nil, a text handler to stderr at Info level is used.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithSession adds a session ID field to the logger.
func (l *Logger) WithSession(id string) *Logger {
	return &Logger{Logger: l.Logger.With("session", id)}
}

// WithStrategy adds a strategy name field to the logger.
func (l *Logger) WithStrategy(name string) *Logger {
	return &Logger{Logger: l.Logger.With("strategy", name)}
}

// WithTrial adds a trial number field to the logger.
func (l *Logger) WithTrial(n int) *Logger {
	return &Logger{Logger: l.Logger.With("trial", n)}
}
