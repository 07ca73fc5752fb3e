package repository

import "errors"

var (
	// ErrSourceUnavailable - the source could not be fetched or decoded.
	ErrSourceUnavailable = errors.New("dataset source unavailable")
)
