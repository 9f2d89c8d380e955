package logger

import (
	"context"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// Used when a context carries no request logger (background jobs, tests).
var base = zap.NewNop().Sugar()

// Run builds the process-wide logger for the given level ("debug", "info", "error", ...)
// and makes it the fallback for contexts without a request logger.
func Run(level string) *zap.SugaredLogger {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			log.Printf("logger: unknown level %q, using info", level)
			lvl = zapcore.InfoLevel
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := cfg.Build()
	if err != nil {
		log.Fatalf("logger: can't build zap logger: %v", err)
	}

	base = zl.Sugar()
	return base
}

func WithLogger(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Log returns the request-scoped logger.
func Log(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return base
	}
	if l, ok := ctx.Value(loggerKey).(*zap.SugaredLogger); ok && l != nil {
		return l
	}
	return base
}
