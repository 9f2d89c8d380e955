package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"learnapp/pkg/logger"
)

type requestIdKey string

const RequestIdKey requestIdKey = "requestId"

type LoggingMiddleware struct {
	logger *zap.SugaredLogger
}

func NewLoggingMiddleware(l *zap.SugaredLogger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: l}
}

// SetupTracing gives every request an id, reusing the caller's X-Request-Id.
func (lm *LoggingMiddleware) SetupTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqId := r.Header.Get("X-Request-Id")
		if reqId == "" {
			reqId = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqId)
		ctx := context.WithValue(r.Context(), RequestIdKey, reqId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetupLogging puts a request-scoped logger into the context.
func (lm *LoggingMiddleware) SetupLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqId, _ := r.Context().Value(RequestIdKey).(string)
		reqLogger := lm.logger.With(
			"request_id", reqId,
			"method", r.Method,
			"path", r.URL.Path,
		)
		ctx := logger.WithLogger(r.Context(), reqLogger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (lm *LoggingMiddleware) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Log(r.Context()).Infow("access",
			"remote_addr", r.RemoteAddr,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
