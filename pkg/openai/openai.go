package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Complete sends a chat completion request and returns the first choice's content.
func (o *openaiImpl) Complete(ctx context.Context, params CompletionParams) (string, error) {
	url := fmt.Sprintf("%s/chat/completions", o.baseURL)

	req := Request{
		Model:       o.model,
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
		Messages: []Message{
			{Role: RoleSystem, Content: params.SystemPrompt},
			{Role: RoleUser, Content: params.UserPrompt},
		},
	}

	headers := map[string]string{
		"Authorization": "Bearer " + o.apiKey,
	}

	body, statusCode, err := o.httpClient.Post(ctx, url, req, headers)
	if err != nil {
		return "", fmt.Errorf("failed to call chat completions API: %w", err)
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("chat completions API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal chat completions response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoContent
	}

	return resp.Choices[0].Message.Content, nil
}
