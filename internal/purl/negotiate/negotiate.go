// Package negotiate matches a client's requested media types against the representations
// available for a record.
package negotiate

import (
	"purl/internal/purl/mediatype"
	"purl/internal/purl/models"
)

// Default is served when the client expresses no preference at all.
var Default = mediatype.RDFXML

// Fixed lists the representations every record has, in candidate order.
var Fixed = []mediatype.MediaType{
	mediatype.RDFXML,
	mediatype.Turtle,
	mediatype.JSONLD,
	mediatype.HTML,
	mediatype.JSON,
}

// Candidates returns the ordered candidate list for a record: the fixed representations
// followed by the distinct multimedia formats of points, first seen wins. Formats that do
// not parse are returned in rejected and take no part in negotiation.
func Candidates(points []models.AccessPoint) (candidates []mediatype.MediaType, rejected []string) {
	candidates = make([]mediatype.MediaType, 0, len(Fixed)+len(points))
	candidates = append(candidates, Fixed...)
	for _, p := range points {
		mt, err := p.MediaType()
		if err != nil {
			rejected = append(rejected, p.Format)
			continue
		}
		candidates = append(candidates, mt)
	}
	return mediatype.Dedupe(candidates), rejected
}

// Negotiate returns the candidate selected for requested. An empty requested list selects
// Default without looking at candidates. Otherwise requested types are tried in order, and
// for each one the candidates in order; the first compatible candidate wins. ok is false
// when nothing matches, in which case all candidates are the alternatives.
func Negotiate(requested, candidates []mediatype.MediaType) (selected mediatype.MediaType, ok bool) {
	if len(requested) == 0 {
		return Default, true
	}
	for _, r := range requested {
		for _, c := range candidates {
			if r.Compatible(c) {
				return c, true
			}
		}
	}
	return mediatype.MediaType{}, false
}

// IsRDF reports whether mt is one of the synthesized RDF serializations.
func IsRDF(mt mediatype.MediaType) bool {
	return mt.Essence() == mediatype.RDFXML.Essence() ||
		mt.Essence() == mediatype.Turtle.Essence() ||
		mt.Essence() == mediatype.JSONLD.Essence()
}
