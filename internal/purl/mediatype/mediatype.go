// Package mediatype models the media types exchanged during content negotiation.
//
// Media types are compared for compatibility, not equality: a wildcard type matches any
// type and a wildcard subtype matches any subtype of the same type. Parameters (including
// q-values) never take part in the comparison.
package mediatype

import (
	"errors"
	"fmt"
	"mime"
	"strings"

	pstrings "purl/pkg/platform/strings"
)

// Wildcard matches any type or subtype.
const Wildcard = "*"

// MediaType is a parsed (type, subtype, parameters) triple. Type and Subtype are lower case.
type MediaType struct {
	Type    string
	Subtype string
	Params  map[string]string
}

// Media types served by the resolver.
var (
	RDFXML    = MediaType{Type: "application", Subtype: "rdf+xml"}
	Turtle    = MediaType{Type: "text", Subtype: "turtle"}
	JSONLD    = MediaType{Type: "application", Subtype: "ld+json"}
	HTML      = MediaType{Type: "text", Subtype: "html"}
	JSON      = MediaType{Type: "application", Subtype: "json"}
	JPEG      = MediaType{Type: "image", Subtype: "jpeg"}
	TextPlain = MediaType{Type: "text", Subtype: "plain", Params: map[string]string{"charset": "utf-8"}}
)

// ErrInvalid is returned for values that are not media types.
var ErrInvalid = errors.New("invalid media type")

// Parse parses a single media type such as "text/html" or "application/json; charset=UTF-8".
// A bare "*" is read as "*/*".
func Parse(s string) (MediaType, error) {
	full, params, err := mime.ParseMediaType(s)
	if err != nil && !errors.Is(err, mime.ErrInvalidMediaParameter) {
		return MediaType{}, fmt.Errorf("%w %q: %v", ErrInvalid, s, err)
	}
	typ, sub, ok := strings.Cut(full, "/")
	if !ok {
		if full != Wildcard {
			return MediaType{}, fmt.Errorf("%w %q: missing subtype", ErrInvalid, s)
		}
		sub = Wildcard
	}
	if len(params) == 0 {
		params = nil
	}
	return MediaType{Type: typ, Subtype: sub, Params: params}, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) MediaType {
	mt, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return mt
}

// Compatible reports whether two media types match, taking wildcards into account.
// The relation is symmetric.
func (m MediaType) Compatible(other MediaType) bool {
	if m.Type == Wildcard || other.Type == Wildcard {
		return true
	}
	if !strings.EqualFold(m.Type, other.Type) {
		return false
	}
	if m.Subtype == Wildcard || other.Subtype == Wildcard {
		return true
	}
	return strings.EqualFold(m.Subtype, other.Subtype)
}

// IsZero reports whether m is the zero MediaType.
func (m MediaType) IsZero() bool {
	return m.Type == "" && m.Subtype == ""
}

// Essence returns "type/subtype" without parameters.
func (m MediaType) Essence() string {
	return m.Type + "/" + m.Subtype
}

// String renders the media type with its parameters in canonical order.
func (m MediaType) String() string {
	if len(m.Params) == 0 {
		return m.Essence()
	}
	if s := mime.FormatMediaType(m.Essence(), m.Params); s != "" {
		return s
	}
	return m.Essence()
}

// Dedupe returns types in first-seen order with duplicates (by String) removed.
func Dedupe(types []MediaType) []MediaType {
	seen := make(map[string]struct{}, len(types))
	out := make([]MediaType, 0, len(types))
	for _, t := range types {
		key := t.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Join renders types as a comma separated list.
func Join(types []MediaType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}

// ParseList parses every comma separated element of values. Elements that do not parse
// are returned in rejected so the caller can report them; they never fail the list.
func ParseList(values []string) (types []MediaType, rejected []string) {
	for _, raw := range pstrings.SplitList(values, ",") {
		mt, err := Parse(raw)
		if err != nil {
			rejected = append(rejected, raw)
			continue
		}
		types = append(types, mt)
	}
	return types, rejected
}

// Requested produces the one canonical list of requested media types for a request.
// When an override (the __accept query parameter) is present it fully replaces the
// Accept headers, even if it parses to an empty list.
func Requested(acceptHeaders []string, override string, hasOverride bool) (types []MediaType, rejected []string) {
	if hasOverride {
		return ParseList([]string{override})
	}
	return ParseList(acceptHeaders)
}
