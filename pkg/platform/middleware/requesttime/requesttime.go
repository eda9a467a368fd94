// Package requesttime pins one start time per request so every log line and latency
// measurement for the request shares it.
package requesttime

import (
	"net/http"
	"time"

	"purl/pkg/requestcontext"
)

// Middleware stores now() as the request start time.
func Middleware(now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(requestcontext.WithTime(r.Context(), now())))
		})
	}
}
