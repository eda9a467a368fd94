package ports

import (
	"context"

	"purl/internal/purl/models"
)

// RecordLookup defines the interface for record and multimedia lookups.
// This port keeps the resolver independent of the upstream API and its transport.
type RecordLookup interface {
	// FindByUnitID returns every record carrying the unitID. The resolver, not the
	// lookup, decides what zero or several matches mean.
	FindByUnitID(ctx context.Context, unitID string) ([]models.Record, error)

	// FindMultimedia returns the access points of the multimedia documents associated
	// with rec, in upstream order.
	FindMultimedia(ctx context.Context, rec *models.Record) ([]models.AccessPoint, error)
}
