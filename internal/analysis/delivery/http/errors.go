package http

import (
	"errors"

	"procurement-srv/internal/analysis"
	"procurement-srv/internal/vendors"
	pkgErrors "procurement-srv/pkg/errors"
)

var (
	errQueryRequired       = pkgErrors.NewHTTPError(400, "Query is required")
	errDataNotLoaded       = pkgErrors.NewHTTPError(404, "Vendor data has not been loaded yet")
	errAnalysisUnavailable = pkgErrors.NewHTTPError(502, "Analysis service unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrQueryRequired):
		return errQueryRequired
	case errors.Is(err, vendor.ErrNoSnapshot):
		return errDataNotLoaded
	case errors.Is(err, analysis.ErrAnalysisUnavailable):
		return errAnalysisUnavailable
	default:
		panic(err)
	}
}
