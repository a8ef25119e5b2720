package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"tagtemanin/internal/contextutil"
)

// LoggerMiddleware adds a structured logger to the request context.
// The logger carries the request id set by chi's RequestID middleware, or a
// fresh UUID when none is present.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetReqID(r.Context())
		if requestID == "" {
			requestID = uuid.NewString()
		}
		logger := slog.Default().With(
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)
		ctx := contextutil.WithLogger(r.Context(), logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// responseWriter records the status code written by a handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs one line per request. Successful GET / requests are
// skipped so uptime probes against the usage page stay quiet.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		if r.Method == http.MethodGet && r.URL.Path == "/" && rw.statusCode == http.StatusOK {
			return
		}

		ctx := r.Context()
		logger := contextutil.LoggerFromContext(ctx)
		attrs := []any{
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if rw.statusCode >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "request completed", attrs...)
			return
		}
		logger.InfoContext(ctx, "request completed", attrs...)
	})
}

// CORS adds CORS headers to allow cross-origin requests.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "3600")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
