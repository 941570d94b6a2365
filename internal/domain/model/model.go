package model

import (
	"context"
	"fmt"
	"strings"

	"model-gateway/services/gemini-adapter/internal/config"
	"model-gateway/services/gemini-adapter/internal/utils/platformerrors"
)

const (
	// DefaultModelID is the catalog entry marked as default, both in the
	// static catalog and in discovered catalogs.
	DefaultModelID = "gemini-2.5-flash"

	DefaultMaxInputTokens  = 1_048_576
	DefaultMaxOutputTokens = 65_536
)

// Model is a single catalog entry exposed to callers.
type Model struct {
	ID              string
	DisplayName     string
	MaxInputTokens  int
	MaxOutputTokens int
	IsDefault       bool
}

// Provider describes the upstream provider this adapter fronts.
type Provider struct {
	Kind          string
	DisplayName   string
	BaseURL       string
	OpenAIBaseURL string
	APIKeyURL     string
}

// NewProvider builds the Gemini provider descriptor from configuration.
func NewProvider(cfg *config.Config) Provider {
	return Provider{
		Kind:          "gemini",
		DisplayName:   "Gemini",
		BaseURL:       strings.TrimRight(cfg.GeminiBaseURL, "/"),
		OpenAIBaseURL: strings.TrimRight(cfg.GeminiOpenAIBaseURL, "/"),
		APIKeyURL:     "https://aistudio.google.com/apikey",
	}
}

// ResolveEndpointURL returns the chat completion endpoint for a model. All
// Gemini models share the OpenAI compatibility endpoint.
func (p Provider) ResolveEndpointURL(_ Model) string {
	return p.OpenAIBaseURL + "/chat/completions"
}

// DefaultCatalog is the hand-maintained fallback returned whenever live
// discovery cannot produce a usable catalog.
func DefaultCatalog() []Model {
	return []Model{
		{
			ID:              "gemini-2.5-flash",
			DisplayName:     "Gemini 2.5 Flash",
			MaxInputTokens:  DefaultMaxInputTokens,
			MaxOutputTokens: DefaultMaxOutputTokens,
			IsDefault:       true,
		},
		{
			ID:              "gemini-2.5-pro",
			DisplayName:     "Gemini 2.5 Pro",
			MaxInputTokens:  DefaultMaxInputTokens,
			MaxOutputTokens: DefaultMaxOutputTokens,
		},
		{
			ID:              "gemini-2.5-flash-lite",
			DisplayName:     "Gemini 2.5 Flash-Lite",
			MaxInputTokens:  DefaultMaxInputTokens,
			MaxOutputTokens: DefaultMaxOutputTokens,
		},
	}
}

// CatalogFromEntries converts operator supplied catalog file entries into the
// static catalog, applying the same token limit defaults as discovery.
func CatalogFromEntries(entries []config.CatalogEntry) ([]Model, error) {
	if len(entries) == 0 {
		return nil, platformerrors.NewError(context.Background(), platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "catalog override has no models", nil, "4c8e2d1f-6a3b-4f5e-9d7c-8b0a1e2f3d4c")
	}

	models := make([]Model, 0, len(entries))
	defaults := 0
	for _, entry := range entries {
		m := Model{
			ID:              entry.ID,
			DisplayName:     entry.DisplayName,
			MaxInputTokens:  entry.MaxInputTokens,
			MaxOutputTokens: entry.MaxOutputTokens,
			IsDefault:       entry.Default,
		}
		if m.DisplayName == "" {
			m.DisplayName = m.ID
		}
		if m.MaxInputTokens <= 0 {
			m.MaxInputTokens = DefaultMaxInputTokens
		}
		if m.MaxOutputTokens <= 0 {
			m.MaxOutputTokens = DefaultMaxOutputTokens
		}
		if m.IsDefault {
			defaults++
		}
		models = append(models, m)
	}
	if defaults != 1 {
		return nil, platformerrors.NewError(context.Background(), platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, fmt.Sprintf("catalog override must have exactly one default model, found %d", defaults), nil, "a7b9c1d3-e5f7-4081-92a3-b4c5d6e7f809")
	}
	return models, nil
}
