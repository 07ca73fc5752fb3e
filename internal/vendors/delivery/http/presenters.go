package http

import (
	"procurement-srv/internal/model"
	"procurement-srv/internal/vendors"
	"procurement-srv/pkg/paginator"
)

type listVendorsReq struct {
	Search        string
	MinRating     float64
	MaxPrice      *float64
	Location      string
	CompliantOnly bool
	Page          int
	Limit         int64
}

func (r listVendorsReq) toInput() vendor.ListInput {
	return vendor.ListInput{
		Filter: vendor.FilterParams{
			Search:        r.Search,
			MinRating:     r.MinRating,
			MaxPrice:      r.MaxPrice,
			Location:      r.Location,
			CompliantOnly: r.CompliantOnly,
		},
		Page: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type vendorResp struct {
	VendorName        string   `json:"vendor_name"`
	Geography         string   `json:"geography"`
	Pricing           string   `json:"pricing"`
	AverageRating     float64  `json:"average_rating"`
	MediaMentions     []string `json:"media_mentions"`
	HighlightReviews  []string `json:"highlight_reviews"`
	ComplianceStatus  string   `json:"compliance_status"`
	CarbonScore       int      `json:"carbon_score"`
	TransparencyScore int      `json:"transparency_score"`
}

type listVendorsResp struct {
	Vendors   []vendorResp                `json:"vendors"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListVendorsResp(o vendor.ListOutput) listVendorsResp {
	vendors := make([]vendorResp, 0, len(o.Vendors))
	for _, v := range o.Vendors {
		vendors = append(vendors, newVendorResp(v))
	}

	return listVendorsResp{
		Vendors:   vendors,
		Paginator: o.Paginator.ToResponse(),
	}
}

func newVendorResp(v model.VendorRecord) vendorResp {
	return vendorResp{
		VendorName:        v.VendorName,
		Geography:         v.Geography,
		Pricing:           v.Pricing,
		AverageRating:     v.AverageRating,
		MediaMentions:     v.MediaMentions,
		HighlightReviews:  v.HighlightReviews,
		ComplianceStatus:  string(v.ComplianceStatus),
		CarbonScore:       v.CarbonScore,
		TransparencyScore: v.TransparencyScore,
	}
}

type refreshResp struct {
	TotalVendors   int      `json:"total_vendors"`
	DroppedRecords int      `json:"dropped_records"`
	SourcesLoaded  int      `json:"sources_loaded"`
	SourcesFailed  []string `json:"sources_failed"`
}

func (h *handler) newRefreshResp(o vendor.RefreshOutput) refreshResp {
	failed := o.SourcesFailed
	if failed == nil {
		failed = []string{}
	}

	return refreshResp{
		TotalVendors:   o.TotalVendors,
		DroppedRecords: o.DroppedRecords,
		SourcesLoaded:  o.SourcesLoaded,
		SourcesFailed:  failed,
	}
}
