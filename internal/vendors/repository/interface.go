package repository

import (
	"context"

	"procurement-srv/internal/model"
)

// Source fetches one dataset document.
//
//go:generate mockery --name Source
type Source interface {
	// Fetch GETs the document at url and decodes it as a JSON array of
	// raw vendor records.
	Fetch(ctx context.Context, url string) ([]model.RawVendor, error)
}

// Snapshot stores the normalized vendor collection for the current load
// cycle. The collection is immutable once stored and replaced wholesale,
// so readers never observe a partially-updated collection.
type Snapshot interface {
	Replace(ctx context.Context, vendors []model.VendorRecord)
	// Current returns the stored collection and whether a load cycle has
	// completed at all (a completed cycle may legitimately hold zero vendors).
	Current(ctx context.Context) ([]model.VendorRecord, bool)
}
