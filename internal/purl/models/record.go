package models

import (
	"purl/internal/purl/mediatype"
)

// FallbackFormat is assumed for access points whose format was never recorded upstream.
var FallbackFormat = mediatype.JPEG

// Record is a specimen or observation as seen by the resolver. Optional fields are nil
// when the upstream document does not carry them. A Record is fetched per request and
// never mutated after conversion.
type Record struct {
	UnitID           string
	DocumentID       string // upstream document ID, used to query the multimedia index
	SourceSystemID   string
	SourceSystemCode string

	ScientificName *string
	Family         *string
	KindOfUnit     *string
	CollectorName  *string
	FieldNumber    *string
	Latitude       *float64
	Longitude      *float64

	// AccessPoints are the multimedia URIs embedded in the record, in upstream order.
	AccessPoints []AccessPoint
}

// AccessPoint points to one multimedia asset.
type AccessPoint struct {
	URI    string
	Format string // empty when unknown
}

// MediaType returns the access point's format, or FallbackFormat when it has none.
func (a AccessPoint) MediaType() (mediatype.MediaType, error) {
	if a.Format == "" {
		return FallbackFormat, nil
	}
	return mediatype.Parse(a.Format)
}

// FirstAccessURI returns the URI of the first embedded access point.
func (r *Record) FirstAccessURI() (string, bool) {
	if r == nil || len(r.AccessPoints) == 0 || r.AccessPoints[0].URI == "" {
		return "", false
	}
	return r.AccessPoints[0].URI, true
}
