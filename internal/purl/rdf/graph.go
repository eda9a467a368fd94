// Package rdf synthesizes the linked-data description of a record. A Graph is built once,
// independent of syntax, and can then be written as RDF/XML, Turtle or JSON-LD.
package rdf

import (
	"strconv"

	"purl/internal/purl/models"
)

// Namespace binds a prefix to a vocabulary IRI.
type Namespace struct {
	Prefix string
	IRI    string
}

// Vocabularies used in record descriptions.
var (
	DC  = Namespace{Prefix: "dc", IRI: "http://purl.org/dc/terms/"}
	DWC = Namespace{Prefix: "dwc", IRI: "http://rs.tdwg.org/dwc/terms/"}

	// Namespaces are declared in this order by every writer.
	Namespaces = []Namespace{DC, DWC}
)

// Predicate is a property within a Namespace.
type Predicate struct {
	Namespace Namespace
	Local     string
}

// IRI returns the full predicate IRI.
func (p Predicate) IRI() string { return p.Namespace.IRI + p.Local }

// QName returns the prefixed name, e.g. "dwc:family".
func (p Predicate) QName() string { return p.Namespace.Prefix + ":" + p.Local }

// Properties emitted for a record.
var (
	Title            = Predicate{DC, "title"}
	Type             = Predicate{DC, "type"}
	Family           = Predicate{DWC, "family"}
	RecordedBy       = Predicate{DWC, "recordedBy"}
	FieldNumber      = Predicate{DWC, "fieldNumber"}
	DecimalLatitude  = Predicate{DWC, "decimalLatitude"}
	DecimalLongitude = Predicate{DWC, "decimalLongitude"}
	AssociatedMedia  = Predicate{DWC, "associatedMedia"}
)

// Statement is a predicate with a plain literal object. The subject is the Graph's.
type Statement struct {
	Predicate Predicate
	Object    string
}

// Graph describes a single subject.
type Graph struct {
	Subject    string
	Statements []Statement
}

// Build maps rec onto the fixed property set. A property is only emitted when its source
// field is present, and at most one associated media URI is emitted.
func Build(subject string, rec *models.Record) *Graph {
	g := &Graph{Subject: subject}
	if rec == nil {
		return g
	}
	g.addOptional(Title, rec.ScientificName)
	g.addOptional(Family, rec.Family)
	g.addOptional(Type, rec.KindOfUnit)
	g.addOptional(RecordedBy, rec.CollectorName)
	g.addOptional(FieldNumber, rec.FieldNumber)
	g.addCoordinate(DecimalLatitude, rec.Latitude)
	g.addCoordinate(DecimalLongitude, rec.Longitude)
	if uri, ok := rec.FirstAccessURI(); ok {
		g.add(AssociatedMedia, uri)
	}
	return g
}

func (g *Graph) add(p Predicate, object string) {
	g.Statements = append(g.Statements, Statement{Predicate: p, Object: object})
}

func (g *Graph) addOptional(p Predicate, object *string) {
	if object != nil {
		g.add(p, *object)
	}
}

func (g *Graph) addCoordinate(p Predicate, value *float64) {
	if value != nil {
		g.add(p, strconv.FormatFloat(*value, 'f', -1, 64))
	}
}
