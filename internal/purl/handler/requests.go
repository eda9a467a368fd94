package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Query parameters that alter request handling.
const (
	paramDebug  = "__debug"
	paramAccept = "__accept"
)

// debugEnabled reports whether __debug is present with an empty or true value.
func debugEnabled(q url.Values) bool {
	values, ok := q[paramDebug]
	if !ok {
		return false
	}
	if len(values) == 0 {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(values[0])) {
	case "", "1", "t", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// acceptOverride returns the __accept parameter, joined when repeated, and whether it was
// present at all.
func acceptOverride(q url.Values) (string, bool) {
	values, ok := q[paramAccept]
	if !ok {
		return "", false
	}
	return strings.Join(values, ","), true
}

// objectID returns the decoded identifier path parameter.
func objectID(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id
	}
	if decoded, err := url.PathUnescape(id); err == nil {
		return decoded
	}
	return id
}
