package usecase

import (
	"encoding/json"
	"fmt"

	"procurement-srv/internal/model"
)

const (
	analysisSystemPrompt   = "You are an expert AI procurement analyst specializing in vendor evaluation and compliance."
	complianceSystemPrompt = "You are a compliance analyst specializing in vendor risk assessment."
)

func analysisPrompt(query string, sample []model.VendorRecord) string {
	data, _ := json.MarshalIndent(sample, "", "  ")

	return fmt.Sprintf(`As an AI procurement analyst, analyze the following vendor data for the query: %q

Vendor Data: %s

Provide a comprehensive analysis including:
1. Compliance assessment for each vendor
2. Environmental impact scoring
3. Cost-benefit analysis
4. Top 3 recommendations with reasoning
5. Risk assessment

Format your response as JSON with the following structure:
{
  "analysis": "detailed analysis text",
  "compliance": [{"vendor": "name", "score": 0-100, "issues": ["list"], "carbon_score": 0-100}],
  "recommendations": ["top 3 vendor recommendations with reasoning"],
  "environmentalImpact": estimated_kg_co2,
  "cost": estimated_cost_usd
}`, query, data)
}

func compliancePrompt(query string, vendors []model.VendorRecord) string {
	data, _ := json.MarshalIndent(vendors, "", "  ")

	return fmt.Sprintf(`Analyze this vendor dataset for compliance and generate a comprehensive report:

Query: %q
Vendors: %s

Generate a compliance report with:
1. Overall compliance summary
2. Geographic distribution analysis
3. Risk factor identification
4. Compliance rate calculation
5. Top vendor locations with percentages

Return as JSON format.`, query, data)
}
