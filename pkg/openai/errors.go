package openai

import "errors"

var (
	// ErrAPIKeyRequired is returned by NewOpenAI when no API key is configured.
	ErrAPIKeyRequired = errors.New("openai: API key is required")
	// ErrNoContent is returned when the response carries no choices.
	ErrNoContent = errors.New("openai: no content generated")
)
