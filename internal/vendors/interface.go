package vendor

import (
	"context"

	"procurement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Refresh runs a load cycle: fetch all dataset sources, normalize,
	// enrich and replace the current snapshot wholesale.
	Refresh(ctx context.Context) (RefreshOutput, error)
	// List applies the filter over the current snapshot and paginates.
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// Analytics computes the summary for the current snapshot.
	Analytics(ctx context.Context) (model.AnalyticsSummary, error)
	// Snapshot returns the current normalized collection. Callers must
	// treat it as read-only.
	Snapshot(ctx context.Context) ([]model.VendorRecord, error)
}
