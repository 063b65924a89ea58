// Package logging defines a minimal structured-logging interface used across
// the project. Implementations wrap slog or zap.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "record saved", "entity", "train", "id", id)
type Logger interface {
	// Debug logs diagnostic details.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// New builds a Logger for the given level and format.
//
// Formats:
//
//	text         slog text handler (default)
//	json         slog JSON handler
//	zap          zap production encoder (JSON)
//	zap-console  zap development encoder
//
// slog formats write to w; zap formats write to stderr.
func New(level, format string, w io.Writer) (Logger, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return NewSlog(w, level, false), nil
	case "json":
		return NewSlog(w, level, true), nil
	case "zap", "zap-console":
		z, err := NewZap(level, format == "zap-console")
		if err != nil {
			return nil, err
		}
		return NewZapLogger(z), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

type nopLogger struct{}

// NewNop returns a Logger that discards everything.
func NewNop() Logger { return nopLogger{} }

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) Logger                  { return n }
