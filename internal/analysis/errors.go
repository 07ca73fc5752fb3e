package analysis

import "errors"

var (
	// ErrQueryRequired - the request carried no query text.
	ErrQueryRequired = errors.New("query is required")
	// ErrAnalysisUnavailable - the completion endpoint could not be
	// reached or answered non-2xx. Distinct from a malformed answer,
	// which falls back instead of erroring.
	ErrAnalysisUnavailable = errors.New("analysis service unavailable")
)
