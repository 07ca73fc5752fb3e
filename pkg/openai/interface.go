package openai

import (
	"context"
	"time"

	pkghttp "procurement-srv/pkg/http"
)

// IOpenAI defines the interface for chat-completion text generation
// against an OpenAI-compatible endpoint.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// Complete sends a system+user message pair and returns the content of
	// the first choice. Transport failures and non-2xx statuses are errors;
	// interpreting the content is the caller's concern.
	Complete(ctx context.Context, params CompletionParams) (string, error)
}

// NewOpenAI creates a new client. BaseURL and Model default when empty.
// A missing API key is a configuration error, returned here so callers
// decide when configuration is validated.
func NewOpenAI(cfg OpenAIConfig) (IOpenAI, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &openaiImpl{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   90 * time.Second,
			Retries:   2,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}
