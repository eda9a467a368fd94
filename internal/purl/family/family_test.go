package family

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"purl/internal/platform/config"
	"purl/internal/purl/models"
)

func TestParse(t *testing.T) {
	for _, f := range All {
		got, ok := Parse(f.String())
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	got, ok := Parse("Xeno-Canto")
	assert.True(t, ok)
	assert.Equal(t, XenoCanto, got)

	_, ok = Parse("brahms")
	assert.False(t, ok)
}

func TestPattern(t *testing.T) {
	assert.Equal(t, "/naturalis/specimen/{id}", Naturalis.Pattern())
	assert.Equal(t, "/xeno-canto/observation/{id}", XenoCanto.Pattern())
	assert.Equal(t, "/waarneming/observation/{id}", Waarneming.Pattern())
}

func TestValidateProvenance(t *testing.T) {
	tests := []struct {
		family   Family
		code     string
		expected bool
	}{
		{Naturalis, "CRS", true},
		{Naturalis, "BRAHMS", true},
		{Naturalis, "XC", false},
		{Naturalis, "crs", false},
		{XenoCanto, "XC", true},
		{XenoCanto, "CRS", false},
		{Waarneming, "OBS", true},
		{Waarneming, "BRAHMS", false},
		{Waarneming, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.family.String()+"/"+tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.family.ValidateProvenance(&models.Record{SourceSystemCode: tt.code}))
		})
	}
	assert.False(t, Naturalis.ValidateProvenance(nil))
}

func TestLandingPage(t *testing.T) {
	rec := &models.Record{UnitID: "OBS.123", SourceSystemID: "123"}

	assert.Equal(t, config.KeyBioportalSpecimenURL, Naturalis.LandingPageKey())
	assert.Equal(t, PlaceholderUnitID, Naturalis.Placeholder())
	assert.Equal(t, "OBS.123", Naturalis.NaturalID(rec))

	assert.Equal(t, config.KeyXenoCantoObservationURL, XenoCanto.LandingPageKey())
	assert.Equal(t, PlaceholderUnitID, XenoCanto.Placeholder())

	assert.Equal(t, config.KeyWaarnemingObservationURL, Waarneming.LandingPageKey())
	assert.Equal(t, PlaceholderSourceSystemID, Waarneming.Placeholder())
	assert.Equal(t, "123", Waarneming.NaturalID(rec))
}

func TestMultimedia(t *testing.T) {
	assert.Equal(t, Embedded, Naturalis.Multimedia())
	assert.Equal(t, Embedded, XenoCanto.Multimedia())
	assert.Equal(t, Lookup, Waarneming.Multimedia())
}

func TestSubjectIRI(t *testing.T) {
	assert.Equal(t,
		"https://data.biodiversitydata.nl/naturalis/specimen/L%20%20%20085.750",
		Naturalis.SubjectIRI("https://data.biodiversitydata.nl/", "L   085.750"))
	assert.Equal(t,
		"https://data.biodiversitydata.nl/xeno-canto/observation/XC12345",
		XenoCanto.SubjectIRI("https://data.biodiversitydata.nl", "XC12345"))
}
