package rest

import (
	"net/http"
	"time"

	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/core/port"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// LoggerMiddleware кладет в контекст запроса логгер с trace_id.
// Чужой или пустой X-Trace-ID заменяется новым UUID.
func LoggerMiddleware(logger port.LoggerPort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(traceIDHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.NewString()
			}
			w.Header().Set(traceIDHeader, traceID)

			requestLogger := logger.WithFields(port.Fields{"trace_id": traceID})
			httpLogger := requestLogger.WithFields(port.Fields{
				"http_method": r.Method,
				"http_path":   r.URL.Path,
				"remote_addr": r.RemoteAddr,
			})

			ctx := contextkeys.ContextWithLogger(r.Context(), requestLogger)
			ctx = contextkeys.ContextWithTraceID(ctx, traceID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			startTime := time.Now()

			httpLogger.Debug("Request started", nil)
			next.ServeHTTP(ww, r.WithContext(ctx))
			httpLogger.Info("Request finished", port.Fields{
				"status_code":   ww.Status(),
				"bytes_written": ww.BytesWritten(),
				"duration_ms":   time.Since(startTime).Milliseconds(),
			})
		})
	}
}
