package model

import (
	domainmodel "model-gateway/services/gemini-adapter/internal/domain/model"
	"model-gateway/services/gemini-adapter/internal/utils/functional"
)

// ModelResponse is an OpenAI style model listing entry with the adapter's
// token limit extensions.
type ModelResponse struct {
	ID              string `json:"id"`
	Object          string `json:"object"`
	OwnedBy         string `json:"owned_by"`
	DisplayName     string `json:"display_name,omitempty"`
	MaxInputTokens  int    `json:"max_input_tokens,omitempty"`
	MaxOutputTokens int    `json:"max_output_tokens,omitempty"`
	Default         bool   `json:"default,omitempty"`
}

type ModelResponseList struct {
	Object string          `json:"object"`
	Data   []ModelResponse `json:"data"`
}

func BuildModelResponse(m domainmodel.Model, provider domainmodel.Provider) ModelResponse {
	return ModelResponse{
		ID:              m.ID,
		Object:          "model",
		OwnedBy:         provider.Kind,
		DisplayName:     m.DisplayName,
		MaxInputTokens:  m.MaxInputTokens,
		MaxOutputTokens: m.MaxOutputTokens,
		Default:         m.IsDefault,
	}
}

func BuildModelResponseList(models []domainmodel.Model, provider domainmodel.Provider) ModelResponseList {
	return ModelResponseList{
		Object: "list",
		Data: functional.Map(models, func(m domainmodel.Model) ModelResponse {
			return BuildModelResponse(m, provider)
		}),
	}
}
