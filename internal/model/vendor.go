package model

// ComplianceStatus classifies a vendor's regulatory standing.
type ComplianceStatus string

const (
	ComplianceCompliant    ComplianceStatus = "compliant"
	CompliancePartial      ComplianceStatus = "partial"
	ComplianceNonCompliant ComplianceStatus = "non-compliant"
)

// RawVendor - structure of a record in a dataset source document.
type RawVendor struct {
	VendorName       string   `json:"vendor_name"`
	Geography        string   `json:"geography"`
	Pricing          string   `json:"pricing"`
	AverageRating    float64  `json:"average_rating"`
	MediaMentions    []string `json:"media_mentions"`
	HighlightReviews []string `json:"highlight_reviews"`
}

// VendorRecord is a normalized vendor with enrichment attached.
// Records are immutable within a load cycle; the whole collection is
// replaced on refresh.
type VendorRecord struct {
	VendorName       string   `json:"vendor_name"`
	Geography        string   `json:"geography"`
	Pricing          string   `json:"pricing"`
	AverageRating    float64  `json:"average_rating"`
	MediaMentions    []string `json:"media_mentions"`
	HighlightReviews []string `json:"highlight_reviews"`

	// Enrichment - attached once per load cycle.
	ComplianceStatus  ComplianceStatus `json:"compliance_status"`
	CarbonScore       int              `json:"carbon_score"`
	TransparencyScore int              `json:"transparency_score"`
}

// DatasetResult is the tagged outcome of fetching one dataset source,
// preserving the distinction between "zero vendors" and "source failed".
type DatasetResult struct {
	Source      string
	Vendors     []RawVendor
	Unavailable bool
	Err         error
}
