package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"procurement-srv/internal/model"
	"procurement-srv/internal/vendors"
)

func (uc *implUseCase) Refresh(ctx context.Context) (vendor.RefreshOutput, error) {
	urls := append([]string{uc.cfg.PrimaryURL}, uc.cfg.OptionalURLs...)
	results := make([]model.DatasetResult, len(urls))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, url := range urls {
		eg.Go(func() error {
			vendors, err := uc.src.Fetch(egCtx, url)
			if err != nil {
				if i == 0 {
					// Mandatory source, abort the cycle.
					return fmt.Errorf("%w: %v", vendor.ErrPrimarySourceFailure, err)
				}
				uc.l.Warnf(egCtx, "vendor.usecase.Refresh: optional source %s failed: %v", url, err)
				results[i] = model.DatasetResult{Source: url, Unavailable: true, Err: err}
				return nil
			}
			results[i] = model.DatasetResult{Source: url, Vendors: vendors}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		uc.l.Errorf(ctx, "vendor.usecase.Refresh: %v", err)
		return vendor.RefreshOutput{}, err
	}

	var (
		raw     []model.RawVendor
		dropped int
		loaded  int
		failed  []string
	)
	for _, res := range results {
		if res.Unavailable {
			failed = append(failed, res.Source)
			continue
		}
		loaded++
		for _, v := range res.Vendors {
			if !isWellFormed(v) {
				dropped++
				continue
			}
			raw = append(raw, v)
		}
	}

	enriched := uc.enrich(raw)
	uc.snap.Replace(ctx, enriched)

	uc.l.Infof(ctx, "vendor.usecase.Refresh: loaded %d vendors from %d sources (%d dropped, %d sources failed)",
		len(enriched), loaded, dropped, len(failed))

	return vendor.RefreshOutput{
		TotalVendors:   len(enriched),
		DroppedRecords: dropped,
		SourcesLoaded:  loaded,
		SourcesFailed:  failed,
	}, nil
}

// isWellFormed reports whether a raw record carries the identifying
// fields. Records without them are dropped and counted.
func isWellFormed(v model.RawVendor) bool {
	return strings.TrimSpace(v.VendorName) != "" && strings.TrimSpace(v.Geography) != ""
}

func (uc *implUseCase) Snapshot(ctx context.Context) ([]model.VendorRecord, error) {
	vendors, ok := uc.snap.Current(ctx)
	if !ok {
		return nil, vendor.ErrNoSnapshot
	}
	return vendors, nil
}
