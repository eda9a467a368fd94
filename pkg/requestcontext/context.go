// Package requestcontext carries request-scoped values through context.Context without
// depending on net/http. Middleware writes them; the handler, the resolver service and
// the loggers read them.
package requestcontext

import (
	"context"
	"time"
)

type key int

const (
	keyRequestID key = iota
	keyStartTime
	keyClientIP
	keyUserAgent
)

func stringValue(ctx context.Context, k key) string {
	s, _ := ctx.Value(k).(string)
	return s
}

// RequestID returns the request ID, or "" outside a request.
func RequestID(ctx context.Context) string { return stringValue(ctx, keyRequestID) }

// WithRequestID stores the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// ClientIP returns the client address recorded by the metadata middleware.
func ClientIP(ctx context.Context) string { return stringValue(ctx, keyClientIP) }

// UserAgent returns the User-Agent recorded by the metadata middleware.
func UserAgent(ctx context.Context) string { return stringValue(ctx, keyUserAgent) }

// WithClientMetadata stores the client address and User-Agent.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, keyClientIP, clientIP)
	return context.WithValue(ctx, keyUserAgent, userAgent)
}

// Now returns the time the request started. Outside a request it is time.Now().
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(keyStartTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime pins the request start time.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, keyStartTime, t)
}
