// Package logging emits one structured log line per HTTP request.
package logging

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/mssola/useragent"

	"purl/pkg/requestcontext"
)

// Middleware logs method, path, status, size and duration, plus a coarse client
// classification derived from the User-Agent.
func Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := requestcontext.Now(r.Context())
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				"request_id", requestcontext.RequestID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"client_ip", requestcontext.ClientIP(r.Context()),
			}
			attrs = append(attrs, Client(requestcontext.UserAgent(r.Context()))...)

			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(r.Context(), level, "http request", attrs...)
		})
	}
}

// Client classifies a User-Agent string into log attributes.
func Client(userAgent string) []any {
	if userAgent == "" {
		return []any{"client", "unknown"}
	}
	ua := useragent.New(userAgent)
	name, version := ua.Browser()
	return []any{
		"client", name,
		"client_version", version,
		"bot", ua.Bot(),
		"mobile", ua.Mobile(),
	}
}
