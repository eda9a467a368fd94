package nba

// Transport shapes of the NBA v2 JSON documents. Only the fields the resolver reads are
// declared; everything else is ignored on decode.

type specimenDTO struct {
	ID                    string              `json:"id"`
	UnitID                string              `json:"unitID"`
	SourceSystemID        string              `json:"sourceSystemId"`
	SourceSystem          *sourceSystemDTO    `json:"sourceSystem"`
	KindOfUnit            *string             `json:"kindOfUnit"`
	CollectorsFieldNumber *string             `json:"collectorsFieldNumber"`
	Identifications       []identificationDTO `json:"identifications"`
	GatheringEvent        *gatheringEventDTO  `json:"gatheringEvent"`
	AssociatedMultiMedia  []serviceAccessDTO  `json:"associatedMultiMediaUris"`
}

type sourceSystemDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type identificationDTO struct {
	ScientificName        *scientificNameDTO        `json:"scientificName"`
	DefaultClassification *defaultClassificationDTO `json:"defaultClassification"`
}

type scientificNameDTO struct {
	FullScientificName *string `json:"fullScientificName"`
}

type defaultClassificationDTO struct {
	Family *string `json:"family"`
}

type gatheringEventDTO struct {
	GatheringPersons []personDTO      `json:"gatheringPersons"`
	SiteCoordinates  []coordinatesDTO `json:"siteCoordinates"`
}

type personDTO struct {
	FullName *string `json:"fullName"`
}

type coordinatesDTO struct {
	LatitudeDecimal  *float64 `json:"latitudeDecimal"`
	LongitudeDecimal *float64 `json:"longitudeDecimal"`
}

type serviceAccessDTO struct {
	AccessURI string  `json:"accessUri"`
	Format    *string `json:"format"`
	Variant   string  `json:"variant"`
}

type multimediaDTO struct {
	ID                  string             `json:"id"`
	UnitID              string             `json:"unitID"`
	ServiceAccessPoints []serviceAccessDTO `json:"serviceAccessPoints"`
}

type multimediaQueryResultDTO struct {
	TotalSize int `json:"totalSize"`
	ResultSet []struct {
		Item multimediaDTO `json:"item"`
	} `json:"resultSet"`
}
