package chat

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
)

func TestAdaptRequestMovesCompletionBudget(t *testing.T) {
	request := openai.ChatCompletionRequest{
		Model:               "gemini-2.5-flash",
		MaxCompletionTokens: 500,
		Temperature:         0.2,
	}

	adapted := AdaptRequest(request)

	if adapted.MaxCompletionTokens != 0 {
		t.Fatalf("expected max_completion_tokens cleared, got %d", adapted.MaxCompletionTokens)
	}
	if adapted.MaxTokens != 500 {
		t.Fatalf("expected max_tokens 500, got %d", adapted.MaxTokens)
	}
	if adapted.Temperature != 0.2 {
		t.Fatalf("expected temperature preserved, got %f", adapted.Temperature)
	}
}

func TestAdaptRequestZeroBudgetDropsField(t *testing.T) {
	request := openai.ChatCompletionRequest{
		Model:               "gemini-2.5-flash",
		MaxCompletionTokens: 0,
		Temperature:         0.2,
	}

	adapted := AdaptRequest(request)

	if adapted.MaxTokens != 0 {
		t.Fatalf("expected no max_tokens, got %d", adapted.MaxTokens)
	}

	// Neither token field may survive on the wire.
	payload, err := json.Marshal(adapted)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(payload), "max_completion_tokens") || strings.Contains(string(payload), "max_tokens") {
		t.Fatalf("token limit fields leaked into payload: %s", payload)
	}
}

func TestAdaptRequestBudgetWinsOverExistingMaxTokens(t *testing.T) {
	request := openai.ChatCompletionRequest{
		Model:               "gemini-2.5-flash",
		MaxTokens:           100,
		MaxCompletionTokens: 500,
	}

	adapted := AdaptRequest(request)

	if adapted.MaxTokens != 500 {
		t.Fatalf("expected max_completion_tokens to win, got %d", adapted.MaxTokens)
	}
}
