// Package logging defines the structured-logging interface used across the
// server and its two backends, slog and zap.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.uber.org/zap"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are key–value pairs:
//
//	log.Info(ctx, "person created", "id", id)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

// New builds the logger named by backend ("slog" or "zap"). The slog
// backend writes JSON lines to w; zap uses its production config (stderr).
func New(backend string, w io.Writer) (Logger, error) {
	switch backend {
	case "", "slog":
		return NewSlogLogger(slog.New(slog.NewJSONHandler(w, nil))), nil
	case "zap":
		l, err := zap.NewProductionConfig().Build()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize zap logger: %w", err)
		}
		return NewZapLogger(l), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}
