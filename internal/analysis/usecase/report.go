package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"procurement-srv/internal/analysis"
	"procurement-srv/internal/model"
)

const (
	// Pipeline stages reported in run metadata: load, normalize,
	// aggregate, filter, analyze.
	reportNodes = 5

	// Score buckets for compliance verdicts.
	scoreCompliantAbove = 70
	scorePartialAbove   = 40
)

// Static scoring metadata attached to every report.
var reportConstraints = model.ConstraintWeights{
	Compliance:      0.8,
	ClimateFriendly: 0.1,
	Budget:          0.1,
	Formula:         "score = 0.8*compliance + 0.1*normalized_climate + 0.1*normalized_budget",
}

func (uc *implUseCase) FinalReport(ctx context.Context, input analysis.AnalyzeInput) (model.FinalReport, error) {
	started := time.Now()

	result, err := uc.Analyze(ctx, input)
	if err != nil {
		return model.FinalReport{}, err
	}

	vendors, err := uc.vendorUC.Snapshot(ctx)
	if err != nil {
		return model.FinalReport{}, err
	}
	byName := make(map[string]model.VendorRecord, len(vendors))
	for _, v := range vendors {
		byName[v.VendorName] = v
	}

	var selected []string
	var rejected []model.RejectedVendor
	verdicts := make([]model.ComplianceVerdict, 0, len(result.ComplianceEntries))
	for _, entry := range result.ComplianceEntries {
		if entry.Score > scoreCompliantAbove {
			selected = append(selected, entry.VendorName)
		} else {
			rejected = append(rejected, model.RejectedVendor{
				Name:   entry.VendorName,
				Reason: rejectionReason(entry),
			})
		}

		carbon := entry.CarbonScore
		pricing := ""
		if record, ok := byName[entry.VendorName]; ok {
			pricing = record.Pricing
			if carbon == 0 {
				carbon = record.CarbonScore
			}
		}

		verdicts = append(verdicts, model.ComplianceVerdict{
			Vendor:       entry.VendorName,
			Status:       scoreToStatus(entry.Score),
			CarbonScore:  carbon,
			Transparency: transparencyLabel(entry.Score),
			Pricing:      pricing,
			Violations:   entry.Issues,
		})
	}

	return model.FinalReport{
		RunID:     uuid.NewString(),
		UserQuery: input.Query,
		BasicInfo: model.RunInfo{
			Nodes:          reportNodes,
			RuntimeSeconds: time.Since(started).Seconds(),
			DataVolume:     len(vendors),
		},
		ResultsAnalysis: model.ResultsAnalysis{
			Selected: selected,
			Rejected: rejected,
		},
		ComplianceAnalysis: verdicts,
		Constraints:        reportConstraints,
		Environmental: model.EnvironmentalImpact{
			FootprintKgCO2e: result.EnvironmentalImpactKgCO2e,
			CostUSD:         result.EstimatedCostUSD,
		},
	}, nil
}

func scoreToStatus(score int) model.ComplianceStatus {
	switch {
	case score > scoreCompliantAbove:
		return model.ComplianceCompliant
	case score > scorePartialAbove:
		return model.CompliancePartial
	default:
		return model.ComplianceNonCompliant
	}
}

func transparencyLabel(score int) string {
	if score > scoreCompliantAbove {
		return "Transparent"
	}
	return "Partial"
}

// rejectionReason prefers the first reported issue and otherwise
// states the score bucket.
func rejectionReason(entry model.ComplianceEntry) string {
	if len(entry.Issues) > 0 {
		return entry.Issues[0]
	}
	if entry.Score > scorePartialAbove {
		return "Partially compliant"
	}
	return "Non-compliant"
}
