package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"model-gateway/services/gemini-adapter/internal/utils/platformerrors"

	"resty.dev/v3"
)

// ModelClient lists models from the Gemini native API.
type ModelClient struct {
	client  *resty.Client
	baseURL string
}

// ModelRecord is a single entry from the Gemini model listing.
type ModelRecord struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName"`
	Description                string   `json:"description"`
	InputTokenLimit            int      `json:"inputTokenLimit"`
	OutputTokenLimit           int      `json:"outputTokenLimit"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

type ModelsResponse struct {
	Models        []ModelRecord `json:"models"`
	NextPageToken string        `json:"nextPageToken"`
}

func NewModelClient(client *resty.Client, baseURL string) *ModelClient {
	return &ModelClient{
		client:  client,
		baseURL: normalizeBaseURL(baseURL),
	}
}

// ListModels fetches every page of the model listing using the given API key.
func (c *ModelClient) ListModels(ctx context.Context, apiKey string) ([]ModelRecord, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeUnauthorized, "gemini api key is not configured", nil, "8f1c2a74-3f0c-4a4d-9a36-cf6d2f8f5f21")
	}

	var models []ModelRecord
	pageToken := ""
	for {
		var respBody ModelsResponse
		req := c.client.R().
			SetContext(ctx).
			SetHeader("Accept", "application/json").
			SetHeader("Content-Type", "application/json").
			SetQueryParam("key", apiKey).
			SetQueryParam("pageSize", "1000").
			SetResult(&respBody)
		if pageToken != "" {
			req.SetQueryParam("pageToken", pageToken)
		}
		resp, err := req.Get(c.endpoint("/models"))
		if err != nil {
			return nil, c.classifyError(ctx, err)
		}
		if resp.IsError() {
			return nil, c.errorFromResponse(ctx, resp, "list models request failed")
		}
		models = append(models, respBody.Models...)
		if respBody.NextPageToken == "" {
			return models, nil
		}
		pageToken = respBody.NextPageToken
	}
}

// classifyError separates decode failures from transport failures so callers
// can report them under different categories.
func (c *ModelClient) classifyError(ctx context.Context, err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeValidation, "model listing response is not valid JSON", err, "c0b9c0de-55c1-4f3d-92f2-6c2a3f8f0a44")
	}
	return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, "model listing request failed", err, "6b7d0a92-11e4-4a8f-b7d3-9a1f0cf1c9d8")
}

func (c *ModelClient) endpoint(path string) string {
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

func (c *ModelClient) errorFromResponse(ctx context.Context, resp *resty.Response, message string) error {
	if resp == nil || resp.RawResponse == nil || resp.RawResponse.Body == nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s with status %d", message, statusCode(resp)), nil, "3a4b5c6d-7e8f-4a1b-9c0d-1e2f3a4b5c6d")
	}
	defer resp.RawResponse.Body.Close()
	body, err := io.ReadAll(resp.RawResponse.Body)
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s with status %d", message, statusCode(resp)), nil, "9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b6a")
	}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s with status %d", message, statusCode(resp)), nil, "f2e1d0c9-b8a7-4655-8493-7261504f3e2d")
	}
	return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s with status %d: %s", message, statusCode(resp), trimmed), nil, "0a1b2c3d-4e5f-4678-9abc-def012345678")
}

func normalizeBaseURL(baseURL string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/")
}

func statusCode(resp *resty.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode()
}
