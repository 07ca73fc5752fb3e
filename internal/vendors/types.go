package vendor

import (
	"procurement-srv/internal/model"
	"procurement-srv/pkg/paginator"
)

// FilterParams are the recognized filter dimensions. All are optional
// and combined with logical AND.
type FilterParams struct {
	// Search matches vendor name or geography, case-insensitive.
	Search string
	// MinRating is inclusive. Zero keeps every vendor.
	MinRating float64
	// MaxPrice is inclusive, compared against the first numeric token of
	// the pricing string. Nil disables the criterion.
	MaxPrice *float64
	// Location matches geography, case-insensitive, independent of Search.
	Location string
	// CompliantOnly keeps only vendors with compliant status.
	CompliantOnly bool
}

type ListInput struct {
	Filter FilterParams
	Page   paginator.PaginateQuery
}

type ListOutput struct {
	Vendors   []model.VendorRecord
	Paginator paginator.Paginator
}

// RefreshOutput reports the outcome of a load cycle.
type RefreshOutput struct {
	TotalVendors   int
	DroppedRecords int
	SourcesLoaded  int
	SourcesFailed  []string
}
