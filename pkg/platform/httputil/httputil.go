// Package httputil holds the response helpers shared by HTTP handlers.
package httputil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	dErrors "purl/pkg/domain-errors"
)

// ContentTypeText is used for every diagnostic body.
const ContentTypeText = "text/plain; charset=utf-8"

// StatusFor maps a domain error code to its HTTP status. Codes without a client-facing
// meaning are server errors.
func StatusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeNotAcceptable:
		return http.StatusNotAcceptable
	case dErrors.CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// StatusLine renders a status the way diagnostic bodies start, e.g. "303 (SEE OTHER)".
func StatusLine(status int) string {
	return fmt.Sprintf("%d (%s)", status, strings.ToUpper(http.StatusText(status)))
}

// WriteText writes a plain-text body with the given status.
func WriteText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", ContentTypeText)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
