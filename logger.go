package picdesk

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with picdesk-specific context.
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
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDir adds a directory field to the logger.
func (l *Logger) WithDir(dir string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dir", dir),
	}
}

// LogLoad logs a bulk load.
func (l *Logger) LogLoad(ctx context.Context, items, dropped, sections int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "load failed",
			"error", err,
		)
	case dropped > 0:
		l.WarnContext(ctx, "load completed with dropped sources",
			"items", items,
			"dropped", dropped,
			"sections", sections,
		)
	default:
		l.InfoContext(ctx, "load completed",
			"items", items,
			"sections", sections,
		)
	}
}

// LogScan logs a directory scan. Use WithDir to attach the directory.
func (l *Logger) LogScan(ctx context.Context, found int, err error) {
	if err != nil {
		l.WarnContext(ctx, "scan failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "scan completed",
			"found", found,
		)
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(ctx context.Context, key string, p IndexPath, err error) {
	if err != nil {
		l.ErrorContext(ctx, "insert failed",
			"key", key,
			"path", p.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "insert completed",
			"key", key,
			"path", p.String(),
		)
	}
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(ctx context.Context, removed int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "remove failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "remove completed",
			"removed", removed,
		)
	}
}

// LogMove logs a move operation.
func (l *Logger) LogMove(ctx context.Context, from, to IndexPath, err error) {
	if err != nil {
		l.ErrorContext(ctx, "move failed",
			"from", from.String(),
			"to", to.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "move completed",
			"from", from.String(),
			"to", to.String(),
		)
	}
}
