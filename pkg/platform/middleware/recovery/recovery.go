// Package recovery turns a panicking handler into a plain-text 500 response.
package recovery

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"purl/pkg/requestcontext"
)

// Middleware recovers panics, logs them with the stack, and answers 500 when nothing has
// been written yet.
func Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				requestID := requestcontext.RequestID(r.Context())
				logger.ErrorContext(r.Context(), "panic while handling request",
					"request_id", requestID,
					"path", r.URL.Path,
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
				)
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = fmt.Fprintf(w, "500 (INTERNAL SERVER ERROR)\nAn unexpected error occurred (request ID %s)\n", requestID)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
