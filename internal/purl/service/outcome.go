package service

import (
	"purl/internal/purl/family"
	"purl/internal/purl/mediatype"
	"purl/internal/purl/rdf"
)

// OutcomeKind is the terminal state of a resolution that did not fail.
type OutcomeKind int

const (
	OutcomeNotFound OutcomeKind = iota
	OutcomeNotAcceptable
	OutcomeRedirect
	OutcomeInline
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNotFound:
		return "not_found"
	case OutcomeNotAcceptable:
		return "not_acceptable"
	case OutcomeRedirect:
		return "redirect"
	case OutcomeInline:
		return "inline"
	default:
		return "unknown"
	}
}

// Outcome is the decision for one request. Server-side failures are returned as errors
// instead, so an Outcome is always something the client asked about.
type Outcome struct {
	Kind       OutcomeKind
	Family     family.Family
	ObjectType string
	ID         string

	// MediaType is the negotiated media type for redirects and inline content.
	MediaType mediatype.MediaType

	// Location is set for OutcomeRedirect.
	Location string

	// Graph and Format are set for OutcomeInline.
	Graph  *rdf.Graph
	Format rdf.Format

	// Alternatives is set for OutcomeNotAcceptable.
	Alternatives []mediatype.MediaType
}
