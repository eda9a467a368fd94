package nba

import (
	"strings"

	"purl/internal/purl/models"
)

// toRecord converts a specimen document into the resolver's record model. Only the first
// identification, gathering person and site coordinates are considered.
func toRecord(dto specimenDTO) models.Record {
	rec := models.Record{
		UnitID:         dto.UnitID,
		DocumentID:     dto.ID,
		SourceSystemID: dto.SourceSystemID,
		KindOfUnit:     nonBlank(dto.KindOfUnit),
		FieldNumber:    nonBlank(dto.CollectorsFieldNumber),
		AccessPoints:   toAccessPoints(dto.AssociatedMultiMedia),
	}
	if dto.SourceSystem != nil {
		rec.SourceSystemCode = dto.SourceSystem.Code
	}
	if len(dto.Identifications) > 0 {
		ident := dto.Identifications[0]
		if ident.ScientificName != nil {
			rec.ScientificName = nonBlank(ident.ScientificName.FullScientificName)
		}
		if ident.DefaultClassification != nil {
			rec.Family = nonBlank(ident.DefaultClassification.Family)
		}
	}
	if ev := dto.GatheringEvent; ev != nil {
		if len(ev.GatheringPersons) > 0 {
			rec.CollectorName = nonBlank(ev.GatheringPersons[0].FullName)
		}
		if len(ev.SiteCoordinates) > 0 {
			rec.Latitude = ev.SiteCoordinates[0].LatitudeDecimal
			rec.Longitude = ev.SiteCoordinates[0].LongitudeDecimal
		}
	}
	return rec
}

func toAccessPoints(dtos []serviceAccessDTO) []models.AccessPoint {
	if len(dtos) == 0 {
		return nil
	}
	points := make([]models.AccessPoint, 0, len(dtos))
	for _, d := range dtos {
		if d.AccessURI == "" {
			continue
		}
		p := models.AccessPoint{URI: d.AccessURI}
		if d.Format != nil {
			p.Format = strings.TrimSpace(*d.Format)
		}
		points = append(points, p)
	}
	return points
}

// toMultimediaAccessPoints flattens the access points of every multimedia document in
// result order.
func toMultimediaAccessPoints(result multimediaQueryResultDTO) []models.AccessPoint {
	var points []models.AccessPoint
	for _, r := range result.ResultSet {
		points = append(points, toAccessPoints(r.Item.ServiceAccessPoints)...)
	}
	return points
}

func nonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
