package usecase

import (
	"context"
	"sort"

	"procurement-srv/internal/model"
	"procurement-srv/internal/vendors"
)

const (
	topCategory = "paint"

	colorCompliant    = "#10B981"
	colorNonCompliant = "#EF4444"
)

func (uc *implUseCase) Analytics(ctx context.Context) (model.AnalyticsSummary, error) {
	vendors, ok := uc.snap.Current(ctx)
	if !ok {
		uc.l.Warnf(ctx, "vendor.usecase.Analytics: no snapshot yet")
		return model.AnalyticsSummary{}, vendor.ErrNoSnapshot
	}

	return summarize(vendors, uc.cfg.TopLocations), nil
}

// summarize computes the analytics summary over a vendor collection.
// Pure so it can be tested without the snapshot store.
func summarize(vendors []model.VendorRecord, topN int) model.AnalyticsSummary {
	summary := model.AnalyticsSummary{
		TotalVendors: len(vendors),
		TopCategory:  topCategory,
	}
	if len(vendors) == 0 {
		// No data: averages and rates stay nil, not zero.
		return summary
	}

	var ratingSum float64
	var compliant int
	for _, v := range vendors {
		ratingSum += v.AverageRating
		if v.ComplianceStatus == model.ComplianceCompliant {
			compliant++
		}
	}

	avg := ratingSum / float64(len(vendors))
	rate := float64(compliant) / float64(len(vendors)) * 100
	summary.AverageRating = &avg
	summary.ComplianceRate = &rate

	summary.CategoryData = []model.CategoryCount{
		{Name: topCategory, Count: len(vendors)},
	}
	summary.ComplianceData = []model.ComplianceSlice{
		{Label: "Compliant", Percentage: rate, DisplayColor: colorCompliant},
		{Label: "Non-compliant", Percentage: 100 - rate, DisplayColor: colorNonCompliant},
	}
	summary.TopLocations = topLocations(vendors, topN)

	return summary
}

// topLocations groups vendors by exact geography string, orders by
// count descending with ties kept in first-seen order, and keeps the
// top N. Percentages are against the full collection.
func topLocations(vendors []model.VendorRecord, topN int) []model.LocationCount {
	counts := map[string]int{}
	var order []string
	for _, v := range vendors {
		if _, seen := counts[v.Geography]; !seen {
			order = append(order, v.Geography)
		}
		counts[v.Geography]++
	}

	// Stable sort keeps ties in first-seen order.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}

	out := make([]model.LocationCount, 0, len(order))
	for _, loc := range order {
		out = append(out, model.LocationCount{
			Location:   loc,
			Count:      counts[loc],
			Percentage: float64(counts[loc]) / float64(len(vendors)) * 100,
		})
	}
	return out
}
