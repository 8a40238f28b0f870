package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type loggerKey struct{}

// New builds a structured logger. Production emits JSON lines at info level,
// everything else gets a human friendly console writer at debug level.
func New(appName, env string) zerolog.Logger {
	return newWithWriter(os.Stdout, appName, env)
}

func newWithWriter(out io.Writer, appName, env string) zerolog.Logger {
	level := zerolog.DebugLevel
	var w io.Writer = zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339Nano,
	}
	if env == "production" {
		level = zerolog.InfoLevel
		w = out
	}
	return zerolog.New(w).Level(level).With().
		Timestamp().
		Str("app", appName).
		Str("env", env).
		Logger()
}

// FromContext returns the request scoped logger, or a no-op logger when none was stored.
func FromContext(ctx context.Context) zerolog.Logger {
	return FromContextOr(ctx, zerolog.Nop())
}

// FromContextOr returns the request scoped logger, or fallback when none was stored.
func FromContextOr(ctx context.Context, fallback zerolog.Logger) zerolog.Logger {
	if ctx == nil {
		return fallback
	}
	if logger, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
		return logger
	}
	return fallback
}

// IntoContext injects a logger into context for downstream use.
func IntoContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}
