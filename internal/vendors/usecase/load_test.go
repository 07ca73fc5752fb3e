package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"procurement-srv/internal/model"
	"procurement-srv/internal/vendors"
	"procurement-srv/internal/vendors/repository"
	"procurement-srv/internal/vendors/repository/memory"
	"procurement-srv/pkg/log"
)

type fakeSource struct {
	vendors map[string][]model.RawVendor
	fails   map[string]bool
}

func (s *fakeSource) Fetch(ctx context.Context, url string) ([]model.RawVendor, error) {
	if s.fails[url] {
		return nil, repository.ErrSourceUnavailable
	}
	return s.vendors[url], nil
}

func newTestUseCase(src repository.Source, cfg Config) vendor.UseCase {
	return New(src, memory.New(), cfg, log.Init(log.ZapConfig{Level: "error"}))
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("primary failure aborts the cycle", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeSource{fails: map[string]bool{"primary": true}},
			Config{PrimaryURL: "primary"},
		)

		_, err := uc.Refresh(ctx)
		if !errors.Is(err, vendor.ErrPrimarySourceFailure) {
			t.Errorf("error mismatch: got %v, want ErrPrimarySourceFailure", err)
		}

		// No snapshot should have been published.
		if _, err := uc.Snapshot(ctx); !errors.Is(err, vendor.ErrNoSnapshot) {
			t.Errorf("snapshot error mismatch: got %v, want ErrNoSnapshot", err)
		}
	})

	t.Run("optional failure is tolerated and reported", func(t *testing.T) {
		src := &fakeSource{
			vendors: map[string][]model.RawVendor{
				"primary": {
					{VendorName: "Dulux", Geography: "Hanoi"},
					{VendorName: "", Geography: "Hue"}, // malformed, dropped
				},
				"empty": {},
			},
			fails: map[string]bool{"broken": true},
		}
		uc := newTestUseCase(src, Config{
			PrimaryURL:   "primary",
			OptionalURLs: []string{"broken", "empty"},
		})

		out, err := uc.Refresh(ctx)
		if err != nil {
			t.Fatalf("Refresh failed: %v", err)
		}

		if out.TotalVendors != 1 {
			t.Errorf("TotalVendors mismatch: got %d, want 1", out.TotalVendors)
		}
		if out.DroppedRecords != 1 {
			t.Errorf("DroppedRecords mismatch: got %d, want 1", out.DroppedRecords)
		}
		if out.SourcesLoaded != 2 {
			t.Errorf("SourcesLoaded mismatch: got %d, want 2", out.SourcesLoaded)
		}
		if !reflect.DeepEqual(out.SourcesFailed, []string{"broken"}) {
			t.Errorf("SourcesFailed mismatch: got %v, want [broken]", out.SourcesFailed)
		}

		vendors, err := uc.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}
		if len(vendors) != 1 || vendors[0].VendorName != "Dulux" {
			t.Errorf("snapshot mismatch: got %v", vendors)
		}
	})

	t.Run("empty primary publishes an empty snapshot", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeSource{vendors: map[string][]model.RawVendor{"primary": {}}},
			Config{PrimaryURL: "primary"},
		)

		out, err := uc.Refresh(ctx)
		if err != nil {
			t.Fatalf("Refresh failed: %v", err)
		}
		if out.TotalVendors != 0 {
			t.Errorf("TotalVendors mismatch: got %d, want 0", out.TotalVendors)
		}

		// An empty cycle is still a completed cycle.
		vendors, err := uc.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}
		if len(vendors) != 0 {
			t.Errorf("snapshot mismatch: got %d vendors, want 0", len(vendors))
		}
	})
}

func TestEnrichDeterminism(t *testing.T) {
	raw := []model.RawVendor{
		{VendorName: "Dulux", Geography: "Hanoi"},
		{VendorName: "Jotun", Geography: "Saigon"},
		{VendorName: "KOVA", Geography: "Hue"},
	}

	uc := New(&fakeSource{}, memory.New(), Config{Seed: 42}, log.Init(log.ZapConfig{Level: "error"})).(*implUseCase)

	first := uc.enrich(raw)
	second := uc.enrich(raw)
	if !reflect.DeepEqual(first, second) {
		t.Error("enrichment is not deterministic for a fixed seed")
	}

	for _, v := range first {
		switch v.ComplianceStatus {
		case model.ComplianceCompliant, model.CompliancePartial, model.ComplianceNonCompliant:
		default:
			t.Errorf("compliance status mismatch: got %q", v.ComplianceStatus)
		}
		if v.CarbonScore < 0 || v.CarbonScore > 100 {
			t.Errorf("CarbonScore out of range: got %d", v.CarbonScore)
		}
		if v.TransparencyScore < 0 || v.TransparencyScore > 100 {
			t.Errorf("TransparencyScore out of range: got %d", v.TransparencyScore)
		}
	}

	// A different seed reshuffles the enrichment.
	other := New(&fakeSource{}, memory.New(), Config{Seed: 7}, log.Init(log.ZapConfig{Level: "error"})).(*implUseCase)
	if reflect.DeepEqual(first, other.enrich(raw)) {
		t.Error("different seeds should not produce identical enrichment")
	}
}
