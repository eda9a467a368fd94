package nba

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestToRecordOmitsAbsentAndBlankFields(t *testing.T) {
	rec := toRecord(specimenDTO{
		ID:              "D1",
		UnitID:          "U1",
		SourceSystemID:  "U1",
		KindOfUnit:      strPtr("  "),
		Identifications: []identificationDTO{{}},
		GatheringEvent:  &gatheringEventDTO{},
	})

	assert.Equal(t, "U1", rec.UnitID)
	assert.Equal(t, "D1", rec.DocumentID)
	assert.Empty(t, rec.SourceSystemCode)
	assert.Nil(t, rec.KindOfUnit)
	assert.Nil(t, rec.ScientificName)
	assert.Nil(t, rec.Family)
	assert.Nil(t, rec.CollectorName)
	assert.Nil(t, rec.Latitude)
	assert.Nil(t, rec.Longitude)
	assert.Nil(t, rec.AccessPoints)
}

func TestToAccessPointsTrimsFormat(t *testing.T) {
	points := toAccessPoints([]serviceAccessDTO{
		{AccessURI: "http://a", Format: strPtr(" image/png ")},
		{AccessURI: ""},
		{AccessURI: "http://b"},
	})

	assert.Len(t, points, 2)
	assert.Equal(t, "image/png", points[0].Format)
	assert.Equal(t, "", points[1].Format)
}
