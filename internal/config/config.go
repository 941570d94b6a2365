package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton for components that cannot take injected config.
var globalConfig *Config

// Config holds all environment backed configuration for the gemini-adapter service.
type Config struct {
	// HTTP Server
	HTTPPort    int `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"9091"`

	// Gemini provider
	GeminiAPIKey        string `env:"GEMINI_API_KEY"`
	GeminiBaseURL       string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiOpenAIBaseURL string `env:"GEMINI_OPENAI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai"`

	// Model catalog
	ModelCacheTTL    time.Duration `env:"MODEL_CACHE_TTL" envDefault:"15m"`
	ModelCatalogFile string        `env:"MODEL_CATALOG_FILE"`
	CatalogOverride  []CatalogEntry

	// Catalog refresh
	ModelSyncEnabled         bool `env:"MODEL_SYNC_ENABLED" envDefault:"true"`
	ModelSyncIntervalMinutes int  `env:"MODEL_SYNC_INTERVAL_MINUTES" envDefault:"15"`

	// Observability / Logging
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string        `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"gemini-adapter"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"model-gateway"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.GeminiBaseURL); err != nil {
		return nil, fmt.Errorf("invalid GEMINI_BASE_URL: %w", err)
	}
	if _, err := url.ParseRequestURI(cfg.GeminiOpenAIBaseURL); err != nil {
		return nil, fmt.Errorf("invalid GEMINI_OPENAI_BASE_URL: %w", err)
	}

	if cfg.ModelCacheTTL <= 0 {
		cfg.ModelCacheTTL = 15 * time.Minute
	}

	if file := strings.TrimSpace(cfg.ModelCatalogFile); file != "" {
		entries, err := LoadCatalogFile(file)
		if err != nil {
			return nil, fmt.Errorf("load model catalog file: %w", err)
		}
		cfg.CatalogOverride = entries
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	globalConfig = cfg
	return cfg, nil
}

// GeminiCredential returns the configured provider secret, reporting whether one is set.
func (c *Config) GeminiCredential() (string, bool) {
	key := strings.TrimSpace(c.GeminiAPIKey)
	return key, key != ""
}

// GetGlobal returns the global config instance for components wired before DI.
func GetGlobal() *Config {
	return globalConfig
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
