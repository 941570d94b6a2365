package chathandler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"
	"resty.dev/v3"

	domainmodel "model-gateway/services/gemini-adapter/internal/domain/model"
	"model-gateway/services/gemini-adapter/internal/utils/httpclients/chat"
	"model-gateway/services/gemini-adapter/internal/utils/httpclients/gemini"
)

type offlineLister struct{}

func (offlineLister) ListModels(ctx context.Context, apiKey string) ([]gemini.ModelRecord, error) {
	return nil, errors.New("discovery offline")
}

type staticCredentials struct {
	key string
}

func (c staticCredentials) APIKey(ctx context.Context) (string, bool) {
	return c.key, c.key != ""
}

func newTestHandler(t *testing.T, upstreamOpenAIBaseURL string) *ChatHandler {
	t.Helper()
	provider := domainmodel.Provider{
		Kind:          "gemini",
		OpenAIBaseURL: upstreamOpenAIBaseURL,
	}
	catalogService := domainmodel.NewCatalogService(offlineLister{}, staticCredentials{key: "secret"}, domainmodel.DefaultCatalog(), time.Minute)
	client := chat.NewChatCompletionClient(resty.New(), "gemini", upstreamOpenAIBaseURL)
	return NewChatHandler(client, catalogService, staticCredentials{key: "secret"}, provider)
}

func postCompletion(t *testing.T, handler *ChatHandler, request openai.ChatCompletionRequest) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/v1/chat/completions", handler.CreateChatCompletion)

	payload, err := json.Marshal(request)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)
	return rec
}

func TestCreateChatCompletionUsesProviderEndpoint(t *testing.T) {
	var gotPath, gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:    "chatcmpl-1",
			Model: "gemini-2.5-flash",
		})
	}))
	defer upstream.Close()

	handler := newTestHandler(t, upstream.URL+"/v1beta/openai")
	rec := postCompletion(t, handler, openai.ChatCompletionRequest{
		Model: "gemini-2.5-flash",
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "hi"},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if gotPath != "/v1beta/openai/chat/completions" {
		t.Fatalf("expected completion against the provider endpoint, got %q", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}

	var resp openai.ChatCompletionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "chatcmpl-1" {
		t.Fatalf("unexpected response id %q", resp.ID)
	}
}

func TestCreateChatCompletionUnknownModel(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no upstream call expected for an unknown model")
	}))
	defer upstream.Close()

	handler := newTestHandler(t, upstream.URL)
	rec := postCompletion(t, handler, openai.ChatCompletionRequest{
		Model: "gpt-4o",
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "hi"},
		},
	})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d: %s", http.StatusNotFound, rec.Code, rec.Body.String())
	}
}

func TestCreateChatCompletionDefaultsModel(t *testing.T) {
	var gotBody map[string]any
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode upstream body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{ID: "chatcmpl-2"})
	}))
	defer upstream.Close()

	handler := newTestHandler(t, upstream.URL)
	rec := postCompletion(t, handler, openai.ChatCompletionRequest{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "hi"},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if gotBody["model"] != "gemini-2.5-flash" {
		t.Fatalf("expected request defaulted to gemini-2.5-flash, got %v", gotBody["model"])
	}
}
