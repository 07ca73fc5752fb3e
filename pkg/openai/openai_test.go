package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenAI(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		_, err := NewOpenAI(OpenAIConfig{})
		if err != ErrAPIKeyRequired {
			t.Errorf("error mismatch: got %v, want %v", err, ErrAPIKeyRequired)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		client, err := NewOpenAI(OpenAIConfig{APIKey: "test-key"})
		if err != nil {
			t.Fatalf("NewOpenAI() error = %v", err)
		}
		impl, ok := client.(*openaiImpl)
		if !ok {
			t.Fatal("expected *openaiImpl")
		}
		if impl.baseURL != DefaultBaseURL {
			t.Errorf("baseURL mismatch: got %s, want %s", impl.baseURL, DefaultBaseURL)
		}
		if impl.model != DefaultModel {
			t.Errorf("model mismatch: got %s, want %s", impl.model, DefaultModel)
		}
	})
}

func TestComplete(t *testing.T) {
	t.Run("request shape and bearer auth", func(t *testing.T) {
		var gotReq Request
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			if r.URL.Path != "/chat/completions" {
				t.Errorf("path mismatch: got %s, want /chat/completions", r.URL.Path)
			}
			if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			json.NewEncoder(w).Encode(Response{
				Choices: []Choice{{Message: Message{Role: RoleAssistant, Content: "hello"}}},
			})
		}))
		defer srv.Close()

		client, err := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"})
		if err != nil {
			t.Fatalf("NewOpenAI() error = %v", err)
		}

		content, err := client.Complete(context.Background(), CompletionParams{
			SystemPrompt: "be concise",
			UserPrompt:   "hi",
			Temperature:  0.3,
			MaxTokens:    2000,
		})
		if err != nil {
			t.Fatalf("Complete() error = %v", err)
		}
		if content != "hello" {
			t.Errorf("content mismatch: got %q, want %q", content, "hello")
		}
		if gotAuth != "Bearer test-key" {
			t.Errorf("auth header mismatch: got %q", gotAuth)
		}
		if gotReq.Model != "test-model" {
			t.Errorf("model mismatch: got %s", gotReq.Model)
		}
		if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != RoleSystem || gotReq.Messages[1].Role != RoleUser {
			t.Errorf("messages mismatch: %+v", gotReq.Messages)
		}
		if gotReq.Temperature != 0.3 || gotReq.MaxTokens != 2000 {
			t.Errorf("bounds mismatch: temperature=%v max_tokens=%d", gotReq.Temperature, gotReq.MaxTokens)
		}
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client, _ := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
		if _, err := client.Complete(context.Background(), CompletionParams{UserPrompt: "hi"}); err == nil {
			t.Error("expected error for non-200 status")
		}
	})

	t.Run("empty choices is ErrNoContent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(Response{})
		}))
		defer srv.Close()

		client, _ := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
		if _, err := client.Complete(context.Background(), CompletionParams{UserPrompt: "hi"}); err != ErrNoContent {
			t.Errorf("error mismatch: got %v, want %v", err, ErrNoContent)
		}
	})
}
