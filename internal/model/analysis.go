package model

// AnalysisResult is the typed outcome of a per-query vendor analysis.
// Both the parsed path and the fallback path populate every field.
type AnalysisResult struct {
	AnalysisText              string            `json:"analysis_text"`
	ComplianceEntries         []ComplianceEntry `json:"compliance_entries"`
	Recommendations           []string          `json:"recommendations"`
	EnvironmentalImpactKgCO2e float64           `json:"environmental_impact_kg_co2e"`
	EstimatedCostUSD          float64           `json:"estimated_cost_usd"`
}

// ComplianceEntry is one vendor's compliance assessment.
type ComplianceEntry struct {
	VendorName  string   `json:"vendor_name"`
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	CarbonScore int      `json:"carbon_score"`
}

// ComplianceReport is the batch report produced for a query over the
// full vendor collection.
type ComplianceReport struct {
	Summary          string          `json:"summary"`
	TotalVendors     int             `json:"total_vendors"`
	CompliantVendors int             `json:"compliant_vendors"`
	ComplianceRate   float64         `json:"compliance_rate"`
	TopLocations     []LocationCount `json:"top_locations"`
	RiskFactors      []string        `json:"risk_factors"`
}

// FinalReport is a pure view object assembled from analysis output,
// analytics and static scoring metadata. It owns no behavior.
type FinalReport struct {
	RunID              string              `json:"run_id"`
	UserQuery          string              `json:"user_query"`
	BasicInfo          RunInfo             `json:"basic_info"`
	ResultsAnalysis    ResultsAnalysis     `json:"results_analysis"`
	ComplianceAnalysis []ComplianceVerdict `json:"compliance_analysis"`
	Constraints        ConstraintWeights   `json:"constraints"`
	Environmental      EnvironmentalImpact `json:"environmental"`
}

// RunInfo is basic run metadata.
type RunInfo struct {
	Nodes          int     `json:"nodes"`
	RuntimeSeconds float64 `json:"runtime_seconds"`
	DataVolume     int     `json:"data_volume"`
}

// ResultsAnalysis lists selected vendors and rejected ones with reasons.
type ResultsAnalysis struct {
	Selected []string         `json:"selected"`
	Rejected []RejectedVendor `json:"rejected"`
}

// RejectedVendor is one rejected vendor with the rejection reason.
type RejectedVendor struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ComplianceVerdict is a compliance entry mapped into a status bucket.
type ComplianceVerdict struct {
	Vendor       string           `json:"vendor"`
	Status       ComplianceStatus `json:"status"`
	CarbonScore  int              `json:"carbon_score"`
	Transparency string           `json:"transparency"`
	Pricing      string           `json:"pricing"`
	Violations   []string         `json:"violations"`
}

// ConstraintWeights is the static scoring-formula metadata.
type ConstraintWeights struct {
	Compliance      float64 `json:"compliance"`
	ClimateFriendly float64 `json:"climate_friendly"`
	Budget          float64 `json:"budget"`
	Formula         string  `json:"formula"`
}

// EnvironmentalImpact is the footprint/cost estimate pair.
type EnvironmentalImpact struct {
	FootprintKgCO2e float64 `json:"footprint_kg_co2e"`
	CostUSD         float64 `json:"cost_usd"`
}
