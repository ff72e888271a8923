package dynvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dynvec-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithVector tags every record with the owning vector's id.
func (l *Logger) WithVector(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("vector_id", id),
	}
}

// LogRealloc logs a change of backing storage.
func (l *Logger) LogRealloc(op string, oldCap, newCap, length int, err error) {
	if err != nil {
		l.Error("reallocation failed",
			"op", op,
			"old_capacity", oldCap,
			"new_capacity", newCap,
			"length", length,
			"error", err,
		)
	} else {
		l.Debug("reallocated",
			"op", op,
			"old_capacity", oldCap,
			"new_capacity", newCap,
			"length", length,
		)
	}
}

// LogOutOfBounds logs a rejected index.
func (l *Logger) LogOutOfBounds(op string, index, length int) {
	l.Debug("index out of bounds",
		"op", op,
		"index", index,
		"length", length,
	)
}

// LogFree logs the release of backing storage.
func (l *Logger) LogFree(capacity int) {
	l.Debug("storage released",
		"capacity", capacity,
	)
}
