package model

// AnalyticsSummary aggregates one load cycle's vendor collection.
// AverageRating and ComplianceRate are nil for an empty collection:
// "no data" is a distinct state, never coerced to zero.
type AnalyticsSummary struct {
	TotalVendors   int               `json:"total_vendors"`
	AverageRating  *float64          `json:"average_rating"`
	ComplianceRate *float64          `json:"compliance_rate"`
	TopCategory    string            `json:"top_category"`
	CategoryData   []CategoryCount   `json:"category_data"`
	ComplianceData []ComplianceSlice `json:"compliance_data"`
	TopLocations   []LocationCount   `json:"top_locations"`
}

// CategoryCount is one category bucket.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ComplianceSlice is one slice of the compliance distribution.
type ComplianceSlice struct {
	Label        string  `json:"label"`
	Percentage   float64 `json:"percentage"`
	DisplayColor string  `json:"display_color"`
}

// LocationCount is one geographic grouping. Percentage is computed
// against the full collection, not the top-N slice.
type LocationCount struct {
	Location   string  `json:"location"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}
