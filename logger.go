package lexfeat

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with lexfeat-specific context.
// This provides structured logging with consistent field names.
// Output goes to stderr; stdout carries responses only.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr at warn level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
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
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithKind adds a model kind field to the logger.
func (l *Logger) WithKind(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind),
	}
}

// LogLoad logs a model load.
func (l *Logger) LogLoad(ctx context.Context, kind, source string, entries, dimension int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "model load failed",
			"kind", kind,
			"source", source,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "model loaded",
			"kind", kind,
			"source", source,
			"entries", entries,
			"dimension", dimension,
			"duration", duration,
		)
	}
}

// LogQuery logs one answered query line.
func (l *Logger) LogQuery(ctx context.Context, tokens, found int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "query failed",
			"tokens", tokens,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "query answered",
			"tokens", tokens,
			"found", found,
		)
	}
}

// LogServe logs the end of a serve loop.
func (l *Logger) LogServe(ctx context.Context, lines int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "serve stopped",
			"lines", lines,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "serve completed",
			"lines", lines,
		)
	}
}
