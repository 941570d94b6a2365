package chat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"resty.dev/v3"
)

func TestCreateChatCompletionAdaptsPayload(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:    "chatcmpl-1",
			Model: "gemini-2.5-flash",
		})
	}))
	defer server.Close()

	client := NewChatCompletionClient(resty.New(), "gemini", server.URL)
	resp, err := client.CreateChatCompletion(context.Background(), "/chat/completions", "secret", openai.ChatCompletionRequest{
		Model:               "gemini-2.5-flash",
		MaxCompletionTokens: 256,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "hi"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID != "chatcmpl-1" {
		t.Fatalf("unexpected response id %q", resp.ID)
	}

	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if _, present := gotBody["max_completion_tokens"]; present {
		t.Fatal("max_completion_tokens must not reach the wire")
	}
	if gotBody["max_tokens"] != float64(256) {
		t.Fatalf("expected max_tokens 256, got %v", gotBody["max_tokens"])
	}
}

func TestCreateChatCompletionStreamPassesBodyThrough(t *testing.T) {
	events := "data: {\"choices\":[{\"delta\":{\"content\":\"hel\"}}]}\n\n" +
		"data: {\"choices\":[{\"delta\":{\"content\":\"lo\"}}]}\n\n" +
		"data: [DONE]\n\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if body["stream"] != true {
			t.Errorf("expected stream flag, got %v", body["stream"])
		}
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, events)
	}))
	defer server.Close()

	client := NewChatCompletionClient(resty.New(), "gemini", server.URL)
	body, err := client.CreateChatCompletionStream(context.Background(), "/chat/completions", "secret", openai.ChatCompletionRequest{
		Model: "gemini-2.5-flash",
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "hi"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if string(raw) != events {
		t.Fatalf("stream body altered:\n%s", raw)
	}
}

func TestCreateChatCompletionErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewChatCompletionClient(resty.New(), "gemini", server.URL)
	_, err := client.CreateChatCompletion(context.Background(), "/chat/completions", "secret", openai.ChatCompletionRequest{
		Model: "gemini-2.5-flash",
	})
	if err == nil {
		t.Fatal("expected error for non-success status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestCreateChatCompletionAbsoluteEndpoint(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{ID: "chatcmpl-2"})
	}))
	defer server.Close()

	// An absolute endpoint URL wins over the configured base URL.
	client := NewChatCompletionClient(resty.New(), "gemini", "https://unused.invalid/")
	_, err := client.CreateChatCompletion(context.Background(), server.URL+"/chat/completions", "secret", openai.ChatCompletionRequest{
		Model: "gemini-2.5-flash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("expected request against /chat/completions, got %q", gotPath)
	}
	if client.BaseURL() != "https://unused.invalid" {
		t.Fatalf("expected normalized base url, got %q", client.BaseURL())
	}
}
