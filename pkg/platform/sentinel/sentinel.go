package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The upstream client returns these (wrapped)
// so the resolver can translate them into domain errors.
//
// These represent factual states, not request validation failures:
// - ErrNotFound: the upstream service has no document for the identifier
// - ErrUnavailable: the upstream service could not be reached or answered 5xx
// - ErrTimeout: the upstream call exceeded its deadline
// - ErrMalformed: the upstream answered with a body that does not decode
//
// For request-level failures use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrTimeout     = errors.New("timeout")
	ErrMalformed   = errors.New("malformed response")
)
