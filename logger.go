package scatterset

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with scatterset-specific events.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithName adds a name field to the logger (useful when several sets share a handler).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("set", name),
	}
}

// LogResize logs a rebuild of the backing buffers.
func (l *Logger) LogResize(reason string, from, to, n int) {
	l.Debug("scatter set resized",
		"reason", reason,
		"from", from,
		"to", to,
		"len", n,
	)
}

// LogRelease logs a release of the backing buffers.
func (l *Logger) LogRelease(capacity, n int) {
	l.Debug("scatter set released",
		"capacity", capacity,
		"len", n,
	)
}

// LogCapacityExceeded logs a growth request that cannot be satisfied.
func (l *Logger) LogCapacityExceeded(err error) {
	l.Error("scatter set capacity exceeded",
		"error", err,
	)
}
