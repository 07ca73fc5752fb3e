package vendor

import "errors"

var (
	// ErrPrimarySourceFailure - the mandatory dataset source failed; the
	// whole load cycle is aborted.
	ErrPrimarySourceFailure = errors.New("primary dataset source failed")
	// ErrNoSnapshot - no load cycle has completed yet.
	ErrNoSnapshot = errors.New("vendor data has not been loaded")
)
