package http

import (
	"procurement-srv/internal/analysis"
	"procurement-srv/internal/model"
)

type analyzeReq struct {
	Query string `json:"query" binding:"required"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		Query: r.Query,
	}
}

type complianceEntryResp struct {
	VendorName  string   `json:"vendor_name"`
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	CarbonScore int      `json:"carbon_score"`
}

type analyzeResp struct {
	Analysis            string                `json:"analysis"`
	Compliance          []complianceEntryResp `json:"compliance"`
	Recommendations     []string              `json:"recommendations"`
	EnvironmentalImpact float64               `json:"environmental_impact_kg_co2e"`
	Cost                float64               `json:"estimated_cost_usd"`
}

func (h *handler) newAnalyzeResp(o model.AnalysisResult) analyzeResp {
	entries := make([]complianceEntryResp, 0, len(o.ComplianceEntries))
	for _, e := range o.ComplianceEntries {
		issues := e.Issues
		if issues == nil {
			issues = []string{}
		}
		entries = append(entries, complianceEntryResp{
			VendorName:  e.VendorName,
			Score:       e.Score,
			Issues:      issues,
			CarbonScore: e.CarbonScore,
		})
	}

	return analyzeResp{
		Analysis:            o.AnalysisText,
		Compliance:          entries,
		Recommendations:     o.Recommendations,
		EnvironmentalImpact: o.EnvironmentalImpactKgCO2e,
		Cost:                o.EstimatedCostUSD,
	}
}
