package usecase

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"procurement-srv/internal/model"
	"procurement-srv/internal/vendors"
	"procurement-srv/pkg/paginator"
)

func (uc *implUseCase) List(ctx context.Context, input vendor.ListInput) (vendor.ListOutput, error) {
	vendors, ok := uc.snap.Current(ctx)
	if !ok {
		uc.l.Warnf(ctx, "vendor.usecase.List: no snapshot yet")
		return vendor.ListOutput{}, vendor.ErrNoSnapshot
	}

	filtered := applyFilter(vendors, input.Filter)
	input.Page.Adjust()
	page, pag := paginator.Paginate(filtered, input.Page)

	return vendor.ListOutput{
		Vendors:   page,
		Paginator: pag,
	}, nil
}

// applyFilter keeps vendors matching every active criterion. Inactive
// criteria keep everything, so an all-defaults filter returns the
// collection unchanged.
func applyFilter(vendors []model.VendorRecord, f vendor.FilterParams) []model.VendorRecord {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	location := strings.ToLower(strings.TrimSpace(f.Location))

	out := make([]model.VendorRecord, 0, len(vendors))
	for _, v := range vendors {
		if search != "" &&
			!strings.Contains(strings.ToLower(v.VendorName), search) &&
			!strings.Contains(strings.ToLower(v.Geography), search) {
			continue
		}
		if f.MinRating > 0 && v.AverageRating < f.MinRating {
			continue
		}
		if f.MaxPrice != nil {
			price, ok := parsePrice(v.Pricing)
			// Unpriceable vendors are excluded once a budget cap is set.
			if !ok || price > *f.MaxPrice {
				continue
			}
		}
		if location != "" && !strings.Contains(strings.ToLower(v.Geography), location) {
			continue
		}
		if f.CompliantOnly && v.ComplianceStatus != model.ComplianceCompliant {
			continue
		}
		out = append(out, v)
	}
	return out
}

var priceRe = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// parsePrice extracts the first numeric token of a free-form pricing
// string, e.g. "$25-30 per gallon" yields 25.
func parsePrice(pricing string) (float64, bool) {
	token := priceRe.FindString(pricing)
	if token == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}
