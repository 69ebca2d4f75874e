package dsubench

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with benchmark-specific helpers.
// This keeps field names consistent between the runner and the CLI.
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

// NewJSONLogger creates a Logger that writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))
}

// WithJob tags records with the experiment coordinates.
func (l *Logger) WithJob(exp, rep int) *Logger {
	return &Logger{
		Logger: l.Logger.With("exp", exp, "rep", rep),
	}
}

// LogGenerate logs a finished generation phase.
func (l *Logger) LogGenerate(ctx context.Context, n, edges int, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generation failed",
			"n", n,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "generation completed",
		"n", n,
		"edges", edges,
		"took", took,
	)
}

// LogSweep logs a finished connectivity sweep.
func (l *Logger) LogSweep(ctx context.Context, strategy string, visited int, connected bool, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sweep failed",
			"strategy", strategy,
			"error", err,
		)
		return
	}
	if !connected {
		l.WarnContext(ctx, "sweep ended without full connectivity",
			"strategy", strategy,
			"visited", visited,
		)
		return
	}
	l.DebugContext(ctx, "sweep completed",
		"strategy", strategy,
		"visited", visited,
		"took", took,
	)
}

// ParseLevel maps a case-insensitive level name to slog.Level.
// Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
