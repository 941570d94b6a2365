package modelhandler

import (
	"context"

	domainmodel "model-gateway/services/gemini-adapter/internal/domain/model"
)

// ModelHandler exposes the model catalog to the HTTP routes.
type ModelHandler struct {
	catalogService *domainmodel.CatalogService
	provider       domainmodel.Provider
}

func NewModelHandler(catalogService *domainmodel.CatalogService, provider domainmodel.Provider) *ModelHandler {
	return &ModelHandler{
		catalogService: catalogService,
		provider:       provider,
	}
}

func (h *ModelHandler) ListModels(ctx context.Context) []domainmodel.Model {
	return h.catalogService.ListModels(ctx)
}

func (h *ModelHandler) FindModel(ctx context.Context, id string) (domainmodel.Model, bool) {
	return h.catalogService.FindModel(ctx, id)
}

func (h *ModelHandler) DefaultModel(ctx context.Context) (domainmodel.Model, bool) {
	return h.catalogService.DefaultModel(h.catalogService.ListModels(ctx))
}

func (h *ModelHandler) Provider() domainmodel.Provider {
	return h.provider
}
