package http

import (
	"errors"

	"procurement-srv/internal/vendors"
	pkgErrors "procurement-srv/pkg/errors"
)

var (
	errDataNotLoaded    = pkgErrors.NewHTTPError(404, "Vendor data has not been loaded yet")
	errPrimarySource    = pkgErrors.NewHTTPError(502, "Primary dataset source unavailable")
	errInvalidMinRating = pkgErrors.NewHTTPError(400, "Invalid min_rating")
	errInvalidMaxPrice  = pkgErrors.NewHTTPError(400, "Invalid max_price")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, vendor.ErrNoSnapshot):
		return errDataNotLoaded
	case errors.Is(err, vendor.ErrPrimarySourceFailure):
		return errPrimarySource
	default:
		panic(err)
	}
}
