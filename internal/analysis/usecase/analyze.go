package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"procurement-srv/internal/analysis"
	"procurement-srv/internal/model"
	"procurement-srv/pkg/openai"
)

// llmAnalysis is the JSON shape the completion is asked to produce.
type llmAnalysis struct {
	Analysis            string               `json:"analysis"`
	Compliance          []llmComplianceEntry `json:"compliance"`
	Recommendations     []string             `json:"recommendations"`
	EnvironmentalImpact float64              `json:"environmentalImpact"`
	Cost                float64              `json:"cost"`
}

type llmComplianceEntry struct {
	Vendor      string   `json:"vendor"`
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	CarbonScore int      `json:"carbon_score"`
}

func (uc *implUseCase) Analyze(ctx context.Context, input analysis.AnalyzeInput) (model.AnalysisResult, error) {
	if strings.TrimSpace(input.Query) == "" {
		return model.AnalysisResult{}, analysis.ErrQueryRequired
	}

	vendors, err := uc.vendorUC.Snapshot(ctx)
	if err != nil {
		return model.AnalysisResult{}, err
	}

	sample := vendors
	if len(sample) > analysisSampleCap {
		sample = sample[:analysisSampleCap]
	}

	cacheKey := uc.cacheKey(input.Query, sample)
	if cached, ok := uc.cacheGet(ctx, cacheKey); ok {
		uc.l.Debugf(ctx, "analysis.usecase.Analyze: cache hit")
		return cached, nil
	}

	content, err := uc.ai.Complete(ctx, openai.CompletionParams{
		SystemPrompt: analysisSystemPrompt,
		UserPrompt:   analysisPrompt(input.Query, sample),
		Temperature:  analysisTemperature,
		MaxTokens:    analysisMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: completion failed: %v", err)
		return model.AnalysisResult{}, fmt.Errorf("%w: %v", analysis.ErrAnalysisUnavailable, err)
	}

	result := parseAnalysis(content)
	uc.cacheSet(ctx, cacheKey, result)

	return result, nil
}

// parseAnalysis decodes the completion content, falling back to a
// deterministic result when the content is not the requested JSON shape.
func parseAnalysis(content string) model.AnalysisResult {
	var parsed llmAnalysis
	if err := json.Unmarshal([]byte(stripFences(content)), &parsed); err != nil {
		return model.AnalysisResult{
			AnalysisText:              content,
			ComplianceEntries:         []model.ComplianceEntry{},
			Recommendations:           []string{},
			EnvironmentalImpactKgCO2e: fallbackEnvironmentalImpact,
			EstimatedCostUSD:          fallbackCostUSD,
		}
	}

	entries := make([]model.ComplianceEntry, 0, len(parsed.Compliance))
	for _, c := range parsed.Compliance {
		entries = append(entries, model.ComplianceEntry{
			VendorName:  c.Vendor,
			Score:       c.Score,
			Issues:      c.Issues,
			CarbonScore: c.CarbonScore,
		})
	}
	if parsed.Recommendations == nil {
		parsed.Recommendations = []string{}
	}

	return model.AnalysisResult{
		AnalysisText:              parsed.Analysis,
		ComplianceEntries:         entries,
		Recommendations:           parsed.Recommendations,
		EnvironmentalImpactKgCO2e: parsed.EnvironmentalImpact,
		EstimatedCostUSD:          parsed.Cost,
	}
}

// stripFences removes a surrounding markdown code fence, with or
// without a language tag. Completions frequently wrap JSON this way.
func stripFences(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// Drop the language tag line, e.g. "json".
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
