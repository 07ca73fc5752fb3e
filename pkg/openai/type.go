package openai

import pkghttp "procurement-srv/pkg/http"

// OpenAIConfig holds the configuration for the client.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// openaiImpl implements IOpenAI against the chat completions API.
type openaiImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient pkghttp.IClient
}

// CompletionParams are the per-call knobs for Complete.
type CompletionParams struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
}

// Request is the chat completions request body.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response is the chat completions response body.
type Response struct {
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage,omitempty"`
}

// Choice is one generated completion.
type Choice struct {
	Message Message `json:"message"`
}

// Usage reports token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
