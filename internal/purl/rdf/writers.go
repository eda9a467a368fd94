package rdf

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"purl/internal/purl/mediatype"
)

const rdfNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// Format identifies an RDF serialization.
type Format string

const (
	FormatRDFXML Format = "rdfxml"
	FormatTurtle Format = "turtle"
	FormatJSONLD Format = "jsonld"
)

var formatMediaTypes = map[Format]mediatype.MediaType{
	FormatRDFXML: mediatype.RDFXML,
	FormatTurtle: mediatype.Turtle,
	FormatJSONLD: mediatype.JSONLD,
}

// FormatFor returns the serialization for a negotiated media type.
func FormatFor(mt mediatype.MediaType) (Format, bool) {
	for f, candidate := range formatMediaTypes {
		if candidate.Essence() == mt.Essence() {
			return f, true
		}
	}
	return "", false
}

// MediaType returns the media type the format is served with.
func (f Format) MediaType() mediatype.MediaType {
	return formatMediaTypes[f]
}

// Write serializes g in format f.
func (g *Graph) Write(w io.Writer, f Format) error {
	switch f {
	case FormatRDFXML:
		return g.WriteRDFXML(w)
	case FormatTurtle:
		return g.WriteTurtle(w)
	case FormatJSONLD:
		return g.WriteJSONLD(w)
	default:
		return fmt.Errorf("unsupported RDF format %q", f)
	}
}

// Render returns g serialized in format f.
func (g *Graph) Render(f Format) (string, error) {
	var buf bytes.Buffer
	if err := g.Write(&buf, f); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteRDFXML writes g as RDF/XML.
func (g *Graph) WriteRDFXML(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString("<rdf:RDF\n\txmlns:rdf=\"" + rdfNamespace + "\"")
	for _, ns := range Namespaces {
		fmt.Fprintf(&buf, "\n\txmlns:%s=\"%s\"", ns.Prefix, ns.IRI)
	}
	buf.WriteString(">\n\n<rdf:Description rdf:about=\"")
	if err := xml.EscapeText(&buf, []byte(g.Subject)); err != nil {
		return err
	}
	buf.WriteString("\">\n")
	for _, st := range g.Statements {
		buf.WriteString("\t<" + st.Predicate.QName() + ">")
		if err := xml.EscapeText(&buf, []byte(st.Object)); err != nil {
			return err
		}
		buf.WriteString("</" + st.Predicate.QName() + ">\n")
	}
	buf.WriteString("</rdf:Description>\n\n</rdf:RDF>\n")
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteTurtle writes g as Turtle. A graph without statements holds no triples, so only
// the prefix declarations are written.
func (g *Graph) WriteTurtle(w io.Writer) error {
	var sb strings.Builder
	for _, ns := range Namespaces {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", ns.Prefix, ns.IRI)
	}
	if len(g.Statements) > 0 {
		sb.WriteString("\n<" + escapeIRI(g.Subject) + ">\n")
		for i, st := range g.Statements {
			terminator := " ;"
			if i == len(g.Statements)-1 {
				terminator = " ."
			}
			fmt.Fprintf(&sb, "\t%s \"%s\"%s\n", st.Predicate.QName(), escapeString(st.Object), terminator)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteJSONLD writes g as a compacted JSON-LD node object.
func (g *Graph) WriteJSONLD(w io.Writer) error {
	context := make(map[string]string, len(Namespaces))
	for _, ns := range Namespaces {
		context[ns.Prefix] = ns.IRI
	}
	node := map[string]any{
		"@context": context,
		"@id":      g.Subject,
	}
	for _, st := range g.Statements {
		node[st.Predicate.QName()] = st.Object
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(node)
}

// escapeString escapes a Turtle string literal.
func escapeString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// escapeIRI escapes the characters Turtle forbids inside an IRIREF.
func escapeIRI(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r <= 0x20, strings.ContainsRune("<>\"{}|^`\\", r):
			fmt.Fprintf(&sb, `\u%04X`, r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
