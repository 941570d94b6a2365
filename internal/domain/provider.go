package domain

import (
	"time"

	"github.com/google/wire"

	"model-gateway/services/gemini-adapter/internal/config"
	"model-gateway/services/gemini-adapter/internal/domain/model"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	ProvideProvider,
	ProvideStaticCatalog,
	ProvideCatalogTTL,
	ProvideCatalogService,
)

func ProvideProvider(cfg *config.Config) model.Provider {
	return model.NewProvider(cfg)
}

// ProvideStaticCatalog returns the fallback catalog, honoring an operator
// supplied override file when one is configured.
func ProvideStaticCatalog(cfg *config.Config) ([]model.Model, error) {
	if len(cfg.CatalogOverride) == 0 {
		return model.DefaultCatalog(), nil
	}
	return model.CatalogFromEntries(cfg.CatalogOverride)
}

func ProvideCatalogTTL(cfg *config.Config) time.Duration {
	return cfg.ModelCacheTTL
}

func ProvideCatalogService(discovery model.ModelLister, credentials model.CredentialProvider, static []model.Model, ttl time.Duration) *model.CatalogService {
	return model.NewCatalogService(discovery, credentials, static, ttl)
}
