package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"model-gateway/services/gemini-adapter/internal/config"
	"model-gateway/services/gemini-adapter/internal/domain/model"
	"model-gateway/services/gemini-adapter/internal/infrastructure/credentials"
	"model-gateway/services/gemini-adapter/internal/infrastructure/crontab"
	"model-gateway/services/gemini-adapter/internal/infrastructure/logger"
	"model-gateway/services/gemini-adapter/internal/utils/httpclients"
	"model-gateway/services/gemini-adapter/internal/utils/httpclients/chat"
	"model-gateway/services/gemini-adapter/internal/utils/httpclients/gemini"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideGeminiModelClient provides the discovery client for the native
// Gemini listing endpoint.
func ProvideGeminiModelClient(cfg *config.Config) *gemini.ModelClient {
	return gemini.NewModelClient(httpclients.NewClient("gemini-models"), cfg.GeminiBaseURL)
}

// ProvideChatCompletionClient provides the client for the OpenAI
// compatibility endpoint.
func ProvideChatCompletionClient(cfg *config.Config) *chat.ChatCompletionClient {
	return chat.NewChatCompletionClient(httpclients.NewClient("gemini-chat"), "gemini", cfg.GeminiOpenAIBaseURL)
}

// ProvideCredentialProvider provides the config backed credential source.
func ProvideCredentialProvider(cfg *config.Config) model.CredentialProvider {
	return credentials.NewConfigProvider(cfg)
}

// ProvideModelLister exposes the Gemini model client as the discovery
// dependency of the catalog service.
func ProvideModelLister(client *gemini.ModelClient) model.ModelLister {
	return client
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	Logger zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(logger zerolog.Logger) *Infrastructure {
	return &Infrastructure{
		Logger: logger,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Upstream HTTP clients
	ProvideGeminiModelClient,
	ProvideChatCompletionClient,

	// Credentials
	ProvideCredentialProvider,
	ProvideModelLister,

	// Logger
	logger.GetLogger,

	// Crontab for model catalog sync
	crontab.NewCrontab,

	// Infrastructure struct
	NewInfrastructure,
)
