package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// NewDefault builds a logger writing to stderr. The level is taken from
// LOG_LEVEL (Debug, Info, Warn; default Info). When PRETTY_LOGGER=true a
// tint handler produces colored single-line output for local development;
// otherwise records are emitted as JSON.
func NewDefault() *SlogLogger {
	w := os.Stderr
	level := new(slog.LevelVar)

	switch os.Getenv("LOG_LEVEL") {
	case "Debug":
		level.Set(slog.LevelDebug)
	case "Warn":
		level.Set(slog.LevelWarn)
	default:
		level.Set(slog.LevelInfo)
	}

	if os.Getenv("PRETTY_LOGGER") == "true" {
		return NewSlogLogger(slog.New(tint.NewHandler(w, &tint.Options{Level: level})))
	}
	return NewSlogLogger(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
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

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
