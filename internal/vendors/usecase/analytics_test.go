package usecase

import (
	"testing"

	"procurement-srv/internal/model"
)

func TestSummarize(t *testing.T) {
	t.Run("empty collection keeps averages nil", func(t *testing.T) {
		summary := summarize(nil, 5)

		if summary.TotalVendors != 0 {
			t.Errorf("TotalVendors mismatch: got %d, want 0", summary.TotalVendors)
		}
		if summary.AverageRating != nil {
			t.Errorf("AverageRating mismatch: got %v, want nil", *summary.AverageRating)
		}
		if summary.ComplianceRate != nil {
			t.Errorf("ComplianceRate mismatch: got %v, want nil", *summary.ComplianceRate)
		}
		if len(summary.TopLocations) != 0 {
			t.Errorf("TopLocations mismatch: got %d entries, want 0", len(summary.TopLocations))
		}
	})

	t.Run("averages and compliance rate", func(t *testing.T) {
		vendors := []model.VendorRecord{
			{VendorName: "A", Geography: "Hanoi", AverageRating: 4.0, ComplianceStatus: model.ComplianceCompliant},
			{VendorName: "B", Geography: "Hanoi", AverageRating: 3.0, ComplianceStatus: model.ComplianceNonCompliant},
			{VendorName: "C", Geography: "Da Nang", AverageRating: 5.0, ComplianceStatus: model.ComplianceCompliant},
			{VendorName: "D", Geography: "Hue", AverageRating: 4.0, ComplianceStatus: model.CompliancePartial},
		}

		summary := summarize(vendors, 5)

		if summary.TotalVendors != 4 {
			t.Errorf("TotalVendors mismatch: got %d, want 4", summary.TotalVendors)
		}
		if summary.AverageRating == nil || *summary.AverageRating != 4.0 {
			t.Errorf("AverageRating mismatch: got %v, want 4.0", summary.AverageRating)
		}
		// Partial does not count as compliant.
		if summary.ComplianceRate == nil || *summary.ComplianceRate != 50.0 {
			t.Errorf("ComplianceRate mismatch: got %v, want 50.0", summary.ComplianceRate)
		}
		if summary.TopCategory != "paint" {
			t.Errorf("TopCategory mismatch: got %s, want paint", summary.TopCategory)
		}
		if len(summary.ComplianceData) != 2 {
			t.Fatalf("ComplianceData mismatch: got %d slices, want 2", len(summary.ComplianceData))
		}
		if summary.ComplianceData[0].Percentage != 50.0 || summary.ComplianceData[1].Percentage != 50.0 {
			t.Errorf("ComplianceData percentages mismatch: got %v / %v, want 50 / 50",
				summary.ComplianceData[0].Percentage, summary.ComplianceData[1].Percentage)
		}
	})
}

func TestTopLocations(t *testing.T) {
	vendors := []model.VendorRecord{
		{Geography: "Hanoi"},
		{Geography: "Da Nang"},
		{Geography: "Hanoi"},
		{Geography: "Hue"},
		{Geography: "Da Nang"},
		{Geography: "Hanoi"},
		{Geography: "Saigon"},
		{Geography: "Can Tho"},
		{Geography: "Vinh"},
	}

	t.Run("ordered by count, capped at top N", func(t *testing.T) {
		locs := topLocations(vendors, 3)

		if len(locs) != 3 {
			t.Fatalf("length mismatch: got %d, want 3", len(locs))
		}
		if locs[0].Location != "Hanoi" || locs[0].Count != 3 {
			t.Errorf("first location mismatch: got %s/%d, want Hanoi/3", locs[0].Location, locs[0].Count)
		}
		if locs[1].Location != "Da Nang" || locs[1].Count != 2 {
			t.Errorf("second location mismatch: got %s/%d, want Da Nang/2", locs[1].Location, locs[1].Count)
		}
		// Hue, Saigon, Can Tho and Vinh all tie at 1; Hue was seen first.
		if locs[2].Location != "Hue" {
			t.Errorf("tie break mismatch: got %s, want Hue", locs[2].Location)
		}
	})

	t.Run("percentage against full collection", func(t *testing.T) {
		locs := topLocations(vendors, 1)

		want := 3.0 / 9.0 * 100
		if locs[0].Percentage != want {
			t.Errorf("Percentage mismatch: got %v, want %v", locs[0].Percentage, want)
		}
	})

	t.Run("case sensitive grouping", func(t *testing.T) {
		locs := topLocations([]model.VendorRecord{
			{Geography: "hanoi"},
			{Geography: "Hanoi"},
		}, 5)

		if len(locs) != 2 {
			t.Errorf("grouping mismatch: got %d locations, want 2 distinct", len(locs))
		}
	})
}
