package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// New builds the PURL HTTP server. A request may wait on two sequential upstream calls
// (record then multimedia), so the write deadline covers both plus rendering. Server
// errors go to logger at warn level.
func New(addr string, handler http.Handler, upstreamTimeout time.Duration, logger *slog.Logger) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      WriteTimeout(upstreamTimeout),
		IdleTimeout:       idleTimeout,
	}
	if logger != nil {
		srv.ErrorLog = slog.NewLogLogger(logger.Handler(), slog.LevelWarn)
	}
	return srv
}

// WriteTimeout returns the response deadline for a given upstream timeout.
func WriteTimeout(upstreamTimeout time.Duration) time.Duration {
	if upstreamTimeout <= 0 {
		upstreamTimeout = 10 * time.Second
	}
	return 2*upstreamTimeout + 5*time.Second
}
