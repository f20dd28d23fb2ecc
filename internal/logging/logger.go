// Package logging provides structured logging for the adt command
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pavanmanishd/adt"
)

// Logger wraps slog.Logger with container-specific helpers
type Logger struct {
	*slog.Logger
	level slog.Level
}

// New creates a new structured logger
func New(level, format string, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}

	logLevel := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
		level:  logLevel,
	}
}

// parseLevel converts string level to slog.Level
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsDebugEnabled returns true if debug logging is enabled
func (l *Logger) IsDebugEnabled() bool {
	return l.level <= slog.LevelDebug
}

// Buffer logs a container's buffer statistics at debug level
func (l *Logger) Buffer(msg string, m adt.BufferMetrics, args ...any) {
	attrs := []any{
		"category", "buffer",
		"len", m.Len,
		"cap", m.Cap,
		"free", m.Free,
		"utilization", m.Utilization,
	}
	l.Debug(msg, append(attrs, args...)...)
}

// Failure logs a failure message (error level with failure context)
func (l *Logger) Failure(msg string, args ...any) {
	l.Error(msg, append([]any{"type", "failure"}, args...)...)
}

// WithCommand returns a logger with command context
func (l *Logger) WithCommand(name string) *Logger {
	return &Logger{
		Logger: l.With("command", name),
		level:  l.level,
	}
}
