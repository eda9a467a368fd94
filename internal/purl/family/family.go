// Package family describes the fixed set of PURL families. Each family determines which
// source systems may back its identifiers, where its HTML landing pages live, and how its
// multimedia is found.
package family

import (
	"net/url"
	"strings"

	"purl/internal/platform/config"
	"purl/internal/purl/models"
)

// Family is one of the PURL families served by the resolver.
type Family int

const (
	Naturalis Family = iota + 1
	XenoCanto
	Waarneming
)

// All lists every family in routing order.
var All = []Family{Naturalis, XenoCanto, Waarneming}

// MultimediaStrategy says where a family's multimedia access points come from.
type MultimediaStrategy int

const (
	// Embedded uses the access points carried by the record itself.
	Embedded MultimediaStrategy = iota
	// Lookup queries the multimedia index because upstream blanks the embedded URIs.
	Lookup
)

// Placeholder names used in landing-page templates.
const (
	PlaceholderUnitID         = "unitID"
	PlaceholderSourceSystemID = "sourceSystemId"
)

// String returns the family's path segment.
func (f Family) String() string {
	switch f {
	case Naturalis:
		return "naturalis"
	case XenoCanto:
		return "xeno-canto"
	case Waarneming:
		return "waarneming"
	default:
		return "unknown"
	}
}

// Parse returns the family for a path segment.
func Parse(s string) (Family, bool) {
	for _, f := range All {
		if strings.EqualFold(s, f.String()) {
			return f, true
		}
	}
	return 0, false
}

// ObjectType is the kind of object the family's identifiers name.
func (f Family) ObjectType() string {
	if f == Naturalis {
		return "specimen"
	}
	return "observation"
}

// Pattern is the chi route the family is served on.
func (f Family) Pattern() string {
	return "/" + f.String() + "/" + f.ObjectType() + "/{id}"
}

// SourceSystems lists the source-system codes allowed to back the family's identifiers.
func (f Family) SourceSystems() []string {
	switch f {
	case Naturalis:
		return []string{"CRS", "BRAHMS"}
	case XenoCanto:
		return []string{"XC"}
	case Waarneming:
		return []string{"OBS"}
	default:
		return nil
	}
}

// ValidateProvenance reports whether rec originates from a source system this family
// accepts. A Naturalis PURL carrying a Xeno-canto unitID, for example, is rejected.
func (f Family) ValidateProvenance(rec *models.Record) bool {
	if rec == nil {
		return false
	}
	for _, code := range f.SourceSystems() {
		if rec.SourceSystemCode == code {
			return true
		}
	}
	return false
}

// LandingPageKey is the configuration key holding the HTML landing-page template.
func (f Family) LandingPageKey() string {
	switch f {
	case Naturalis:
		return config.KeyBioportalSpecimenURL
	case XenoCanto:
		return config.KeyXenoCantoObservationURL
	case Waarneming:
		return config.KeyWaarnemingObservationURL
	default:
		return ""
	}
}

// Placeholder is the name substituted in the landing-page template.
func (f Family) Placeholder() string {
	if f == Waarneming {
		return PlaceholderSourceSystemID
	}
	return PlaceholderUnitID
}

// NaturalID is the record identifier the landing page is keyed on.
func (f Family) NaturalID(rec *models.Record) string {
	if f == Waarneming {
		return rec.SourceSystemID
	}
	return rec.UnitID
}

// Multimedia returns the family's multimedia strategy.
func (f Family) Multimedia() MultimediaStrategy {
	if f == Waarneming {
		return Lookup
	}
	return Embedded
}

// SubjectIRI is the canonical PURL of a record in this family.
func (f Family) SubjectIRI(baseURL, unitID string) string {
	return strings.TrimRight(baseURL, "/") + "/" + f.String() + "/" + f.ObjectType() + "/" + url.PathEscape(unitID)
}
