package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

var _ Logger = (*SlogLogger)(nil)

// SlogLogger adapts *slog.Logger to Logger. ctx reaches the handler, so
// context-aware handlers can pick request values from it.
type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// NewSlog builds a SlogLogger writing text records, or JSON when asJSON is
// set, to w. Records below level are dropped.
func NewSlog(w io.Writer, level string, asJSON bool) *SlogLogger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if asJSON {
		h = slog.NewJSONHandler(w, opts)
	}
	return NewSlogLogger(slog.New(h))
}

// ParseLevel maps debug, warn and error (any case) to their slog levels;
// anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

// With returns a child logger; the parent is left unchanged.
func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
