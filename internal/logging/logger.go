package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// NewLogger returns a JSON slog logger tagged with the service name and a per-process instance id.
func NewLogger(service, level string) *slog.Logger {
	return New(os.Stdout, service, level)
}

// New is NewLogger with an explicit destination.
func New(w io.Writer, service, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{AddSource: true, Level: ParseLevel(level)})
	return slog.New(handler).With(
		slog.String("service", service),
		slog.String("instanceId", uuid.NewString()),
	)
}

// ParseLevel maps a config level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID attaches the chi request identifier, when present, to the logger.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id := middleware.GetReqID(ctx); id != "" {
		return logger.With(slog.String("requestId", id))
	}
	return logger
}
