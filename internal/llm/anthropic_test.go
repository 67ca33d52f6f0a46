package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnthropicInvoke(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("missing x-api-key header")
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Errorf("missing anthropic-version header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": `{"amount": 30, "category": "groceries"}`},
			},
		})
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("newAnthropicClient failed: %v", err)
	}

	got, err := client.Invoke(context.Background(), "parse this", InvokeOptions{SystemPrompt: "be terse"})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if got != `{"amount": 30, "category": "groceries"}` {
		t.Errorf("unexpected response text: %q", got)
	}

	if gotBody["system"] != "be terse" {
		t.Errorf("system prompt not forwarded: %v", gotBody["system"])
	}
	if gotBody["temperature"] != 0.0 {
		t.Errorf("expected temperature 0 by default, got %v", gotBody["temperature"])
	}
	if gotBody["max_tokens"] != float64(defaultMaxTokens) {
		t.Errorf("expected default max_tokens, got %v", gotBody["max_tokens"])
	}
}

func TestAnthropicInvoke_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("newAnthropicClient failed: %v", err)
	}

	if _, err := client.Invoke(context.Background(), "parse this", InvokeOptions{}); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestAnthropicRequiresAPIKey(t *testing.T) {
	if _, err := newAnthropicClient(Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
