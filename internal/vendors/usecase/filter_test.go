package usecase

import (
	"reflect"
	"testing"

	"procurement-srv/internal/model"
	"procurement-srv/internal/vendors"
)

func testVendors() []model.VendorRecord {
	return []model.VendorRecord{
		{VendorName: "Dulux Vietnam", Geography: "Hanoi, Vietnam", Pricing: "$25-30 per gallon", AverageRating: 4.5, ComplianceStatus: model.ComplianceCompliant},
		{VendorName: "Jotun Paints", Geography: "Ho Chi Minh City", Pricing: "$30 per gallon", AverageRating: 4.0, ComplianceStatus: model.CompliancePartial},
		{VendorName: "Nippon Paint", Geography: "Da Nang", Pricing: "Contact for quote", AverageRating: 3.5, ComplianceStatus: model.ComplianceCompliant},
		{VendorName: "KOVA Paint", Geography: "Hanoi, Vietnam", Pricing: "$15 per gallon", AverageRating: 2.8, ComplianceStatus: model.ComplianceNonCompliant},
	}
}

func TestApplyFilter(t *testing.T) {
	t.Run("all defaults returns collection unchanged", func(t *testing.T) {
		vendors := testVendors()
		got := applyFilter(vendors, vendor.FilterParams{})

		if !reflect.DeepEqual(got, vendors) {
			t.Errorf("filtered collection mismatch: got %d vendors, want all %d", len(got), len(vendors))
		}
	})

	t.Run("search matches name or geography, case-insensitive", func(t *testing.T) {
		got := applyFilter(testVendors(), vendor.FilterParams{Search: "hanoi"})
		if len(got) != 2 {
			t.Fatalf("match count mismatch: got %d, want 2", len(got))
		}

		got = applyFilter(testVendors(), vendor.FilterParams{Search: "JOTUN"})
		if len(got) != 1 || got[0].VendorName != "Jotun Paints" {
			t.Errorf("name search mismatch: got %v", got)
		}
	})

	t.Run("min rating is inclusive", func(t *testing.T) {
		got := applyFilter(testVendors(), vendor.FilterParams{MinRating: 4.0})
		if len(got) != 2 {
			t.Errorf("match count mismatch: got %d, want 2", len(got))
		}
	})

	t.Run("max price excludes unpriceable vendors", func(t *testing.T) {
		maxPrice := 20.0
		got := applyFilter(testVendors(), vendor.FilterParams{MaxPrice: &maxPrice})

		// "$25-30" parses to 25, "Contact for quote" never parses.
		if len(got) != 1 || got[0].VendorName != "KOVA Paint" {
			t.Errorf("budget filter mismatch: got %v, want only KOVA Paint", names(got))
		}
	})

	t.Run("max price is inclusive on the first numeric token", func(t *testing.T) {
		maxPrice := 25.0
		got := applyFilter(testVendors(), vendor.FilterParams{MaxPrice: &maxPrice})

		if len(got) != 2 {
			t.Errorf("match count mismatch: got %v, want Dulux and KOVA", names(got))
		}
	})

	t.Run("compliant only drops partial", func(t *testing.T) {
		got := applyFilter(testVendors(), vendor.FilterParams{CompliantOnly: true})

		if len(got) != 2 {
			t.Fatalf("match count mismatch: got %d, want 2", len(got))
		}
		for _, v := range got {
			if v.ComplianceStatus != model.ComplianceCompliant {
				t.Errorf("status mismatch: got %s, want compliant", v.ComplianceStatus)
			}
		}
	})

	t.Run("criteria combine with AND", func(t *testing.T) {
		got := applyFilter(testVendors(), vendor.FilterParams{
			Location:      "vietnam",
			CompliantOnly: true,
		})

		if len(got) != 1 || got[0].VendorName != "Dulux Vietnam" {
			t.Errorf("combined filter mismatch: got %v, want only Dulux Vietnam", names(got))
		}
	})
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in    string
		want  float64
		wants bool
	}{
		{"$25-30 per gallon", 25, true},
		{"30.50 USD", 30.50, true},
		{"from $9.99", 9.99, true},
		{"Contact for quote", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		got, ok := parsePrice(c.in)
		if ok != c.wants || got != c.want {
			t.Errorf("parsePrice(%q) mismatch: got %v/%v, want %v/%v", c.in, got, ok, c.want, c.wants)
		}
	}
}

func names(vendors []model.VendorRecord) []string {
	out := make([]string, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, v.VendorName)
	}
	return out
}
