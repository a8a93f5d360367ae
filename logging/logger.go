// SPDX-License-Identifier: MIT

// Package logging wraps log/slog with the field names minfill uses.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownFormat is returned by New for formats other than text and json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Logger wraps slog.Logger with minfill-specific context.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// New creates a Logger writing to w in the given format ("text" or "json").
func New(w io.Writer, format string, level slog.Level) (*Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", "text":
		return NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("logging: New %q: %w", format, ErrUnknownFormat)
	}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: ParseLevel %q: %w", s, err)
	}

	return l, nil
}

// WithGraph adds the order and size of the graph being processed.
func (l *Logger) WithGraph(n, m int) *Logger {
	return &Logger{Logger: l.Logger.With("n", n, "m", m)}
}

// WithComponent tags records with the component being solved, named by its
// smallest vertex label.
func (l *Logger) WithComponent(label string) *Logger {
	return &Logger{Logger: l.Logger.With("component", label)}
}

// LogSolved logs the outcome of solving one component.
func (l *Logger) LogSolved(ctx context.Context, stage string, cost int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "component failed",
			"stage", stage,
			"error", err,
		)

		return
	}
	l.InfoContext(ctx, "component solved",
		"stage", stage,
		"cost", cost,
	)
}
