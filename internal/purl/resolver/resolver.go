// Package resolver turns a negotiated media type into the representation that is served:
// an inline RDF graph, or the location of the HTML landing page, the JSON document or a
// multimedia asset.
package resolver

import (
	"fmt"
	"net/url"
	"strings"

	"purl/internal/platform/config"
	"purl/internal/purl/family"
	"purl/internal/purl/mediatype"
	"purl/internal/purl/models"
	"purl/internal/purl/rdf"
	"purl/internal/purl/urltemplate"
	dErrors "purl/pkg/domain-errors"
)

// Representation is what a record resolves to for one media type. Exactly one of Location
// and Graph is set.
type Representation struct {
	MediaType mediatype.MediaType
	Location  string
	Graph     *rdf.Graph
	Format    rdf.Format
}

// Inline reports whether the representation is served in the response body.
func (r Representation) Inline() bool {
	return r.Graph != nil
}

// Resolver holds the configured URLs used to build locations.
type Resolver struct {
	nbaBaseURL   string
	purlBaseURL  string
	landingPages map[family.Family]string
}

// New reads every URL the resolver needs from cfg.
func New(cfg *config.Config) (*Resolver, error) {
	nba, err := cfg.Required(config.KeyNBABaseURL)
	if err != nil {
		return nil, err
	}
	if _, err := url.Parse(nba); err != nil {
		return nil, fmt.Errorf("invalid value for %s (check configuration): %w", config.KeyNBABaseURL, err)
	}
	purl, err := cfg.Required(config.KeyPURLBaseURL)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		nbaBaseURL:   strings.TrimRight(nba, "/"),
		purlBaseURL:  purl,
		landingPages: make(map[family.Family]string, len(family.All)),
	}
	for _, f := range family.All {
		tmpl, err := cfg.Required(f.LandingPageKey())
		if err != nil {
			return nil, err
		}
		r.landingPages[f] = tmpl
	}
	return r, nil
}

// Resolve builds the representation of rec for the negotiated media type. accessPoints are
// the multimedia access points the family's candidate list was built from; a selected
// multimedia type without a compatible access point is an internal invariant violation.
func (r *Resolver) Resolve(fam family.Family, rec *models.Record, selected mediatype.MediaType, accessPoints []models.AccessPoint) (Representation, error) {
	if format, ok := rdf.FormatFor(selected); ok {
		graph := rdf.Build(fam.SubjectIRI(r.purlBaseURL, rec.UnitID), rec)
		return Representation{MediaType: format.MediaType(), Graph: graph, Format: format}, nil
	}

	switch selected.Essence() {
	case mediatype.HTML.Essence():
		loc, err := r.LandingPage(fam, rec)
		if err != nil {
			return Representation{}, err
		}
		return Representation{MediaType: selected, Location: loc}, nil
	case mediatype.JSON.Essence():
		return Representation{MediaType: selected, Location: r.JSONLocation(rec.UnitID)}, nil
	}

	for _, ap := range accessPoints {
		mt, err := ap.MediaType()
		if err != nil || ap.URI == "" {
			continue
		}
		if selected.Compatible(mt) {
			return Representation{MediaType: selected, Location: ap.URI}, nil
		}
	}
	return Representation{}, dErrors.Newf(dErrors.CodeInternal,
		"no multimedia access point for negotiated media type %s", selected)
}

// LandingPage expands the family's landing-page template for rec.
func (r *Resolver) LandingPage(fam family.Family, rec *models.Record) (string, error) {
	tmpl, ok := r.landingPages[fam]
	if !ok {
		return "", dErrors.Newf(dErrors.CodeConfiguration, "no landing page configured for %s", fam)
	}
	return urltemplate.Expand(tmpl, fam.Placeholder(), fam.NaturalID(rec))
}

// JSONLocation is the record lookup service URL that returns the record as JSON.
func (r *Resolver) JSONLocation(unitID string) string {
	return r.nbaBaseURL + "/specimen/findByUnitID/" + url.PathEscape(unitID)
}
