package chat

import (
	"context"
	"fmt"
	"io"
	"strings"

	"model-gateway/services/gemini-adapter/internal/infrastructure/logger"
	"model-gateway/services/gemini-adapter/internal/utils/platformerrors"

	"github.com/sashabaranov/go-openai"
	"resty.dev/v3"
)

type StreamOption func(*resty.Request)

func WithHeader(key, value string) StreamOption {
	return func(r *resty.Request) {
		if strings.TrimSpace(key) == "" {
			return
		}
		r.SetHeader(key, value)
	}
}

func WithAcceptEncodingIdentity() StreamOption {
	return WithHeader("Accept-Encoding", "identity")
}

// ChatCompletionClient talks to the Gemini OpenAI compatibility endpoint.
// Requests pass through AdaptRequest before hitting the wire.
type ChatCompletionClient struct {
	client  *resty.Client
	baseURL string
	name    string
}

func NewChatCompletionClient(client *resty.Client, name, baseURL string) *ChatCompletionClient {
	return &ChatCompletionClient{
		client:  client,
		baseURL: normalizeBaseURL(baseURL),
		name:    name,
	}
}

// CreateChatCompletion posts the adapted request to the given completion
// endpoint. A relative endpoint resolves against the client base URL.
func (c *ChatCompletionClient) CreateChatCompletion(ctx context.Context, endpointURL, apiKey string, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	var respBody openai.ChatCompletionResponse
	resp, err := c.prepareRequest(ctx, apiKey).
		SetBody(AdaptRequest(request)).
		SetResult(&respBody).
		Post(c.endpoint(endpointURL))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, c.errorFromResponse(ctx, resp, "chat completion request failed")
	}
	return &respBody, nil
}

// CreateChatCompletionStream performs a streaming completion and returns the
// raw SSE body. The caller owns the returned reader.
func (c *ChatCompletionClient) CreateChatCompletionStream(ctx context.Context, endpointURL, apiKey string, request openai.ChatCompletionRequest, opts ...StreamOption) (io.ReadCloser, error) {
	request.Stream = true
	req := c.prepareRequest(ctx, apiKey).
		SetBody(AdaptRequest(request)).
		SetDoNotParseResponse(true)

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(req)
	}
	if req.Header.Get("Accept-Encoding") == "" {
		req.SetHeader("Accept-Encoding", "identity")
	}

	resp, err := req.Post(c.endpoint(endpointURL))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, c.errorFromResponse(ctx, resp, "streaming chat completion request failed")
	}
	if resp.RawResponse == nil || resp.RawResponse.Body == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, "streaming chat completion request failed: empty response body", nil, "5e80d6a7-4c4e-4f8b-94b5-2d88b7a3c1e0")
	}

	reader, writer := io.Pipe()

	go func() {
		defer func() {
			if closeErr := resp.RawResponse.Body.Close(); closeErr != nil {
				log := logger.GetLogger()
				log.Error().Err(closeErr).Str("client", c.name).Msg("unable to close response body")
			}
		}()

		if _, copyErr := io.Copy(writer, resp.RawResponse.Body); copyErr != nil {
			_ = writer.CloseWithError(copyErr)
			return
		}
		_ = writer.Close()
	}()

	return reader, nil
}

func (c *ChatCompletionClient) BaseURL() string {
	return c.baseURL
}

func (c *ChatCompletionClient) prepareRequest(ctx context.Context, apiKey string) *resty.Request {
	req := c.client.R().SetContext(ctx)
	req.SetHeader("Content-Type", "application/json")
	if strings.TrimSpace(apiKey) != "" {
		req.SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey))
	}
	return req
}

func (c *ChatCompletionClient) endpoint(path string) string {
	if path == "" {
		return c.baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if c.baseURL == "" {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return c.baseURL + path
	}
	return c.baseURL + "/" + path
}

func (c *ChatCompletionClient) errorFromResponse(ctx context.Context, resp *resty.Response, message string) error {
	if resp == nil || resp.RawResponse == nil || resp.RawResponse.Body == nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s with status %d", message, statusCode(resp)), nil, "7c2e9f10-9f7d-4b3a-8a15-63a0e2b4d9f1")
	}
	defer resp.RawResponse.Body.Close()
	body, err := io.ReadAll(resp.RawResponse.Body)
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s with status %d", message, statusCode(resp)), nil, "d4f6a8b0-1c2d-4e3f-9a8b-7c6d5e4f3a2b")
	}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s with status %d", message, statusCode(resp)), nil, "2b4d6f80-3a5c-4e7d-8f90-1a2b3c4d5e6f")
	}
	return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s with status %d: %s", message, statusCode(resp), trimmed), nil, "e9c7b5a3-8d6f-4e2c-9b1a-0f8e7d6c5b4a")
}

func normalizeBaseURL(base string) string {
	trimmed := strings.TrimSpace(base)
	trimmed = strings.TrimRight(trimmed, "/")
	return trimmed
}

func statusCode(resp *resty.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode()
}
