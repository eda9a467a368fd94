package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"purl/internal/purl/mediatype"
	"purl/internal/purl/service"
)

func TestRenderNotAcceptable(t *testing.T) {
	resp := renderOutcome(&service.Outcome{
		Kind:         service.OutcomeNotAcceptable,
		Alternatives: []mediatype.MediaType{mediatype.RDFXML, mediatype.JPEG},
	})

	assert.Equal(t, http.StatusNotAcceptable, resp.status)
	assert.True(t, resp.negotiated)
	assert.Equal(t, "None of the requested media types can be served\n"+
		"Acceptable media types for this object: application/rdf+xml,image/jpeg\n", resp.detail)
}
