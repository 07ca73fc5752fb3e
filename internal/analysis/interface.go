package analysis

import (
	"context"

	"procurement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze runs a per-query vendor analysis over a sample of the
	// current snapshot.
	Analyze(ctx context.Context, input AnalyzeInput) (model.AnalysisResult, error)
	// ComplianceReport generates a compliance report over the full
	// snapshot.
	ComplianceReport(ctx context.Context, input AnalyzeInput) (model.ComplianceReport, error)
	// FinalReport runs Analyze and composes the full report view.
	FinalReport(ctx context.Context, input AnalyzeInput) (model.FinalReport, error)
}
