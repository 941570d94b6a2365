package credentials

import (
	"context"

	"model-gateway/services/gemini-adapter/internal/config"
)

// ConfigProvider hands out the Gemini API key from configuration. It reports
// false when no key is set so callers can fall back instead of sending
// unauthenticated requests upstream.
type ConfigProvider struct {
	cfg *config.Config
}

func NewConfigProvider(cfg *config.Config) *ConfigProvider {
	return &ConfigProvider{cfg: cfg}
}

func (p *ConfigProvider) APIKey(_ context.Context) (string, bool) {
	return p.cfg.GeminiCredential()
}
