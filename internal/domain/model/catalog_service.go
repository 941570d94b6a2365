package model

import (
	"context"
	"sync"
	"time"

	"model-gateway/services/gemini-adapter/internal/infrastructure/logger"
	"model-gateway/services/gemini-adapter/internal/infrastructure/metrics"
	"model-gateway/services/gemini-adapter/internal/utils/functional"
	"model-gateway/services/gemini-adapter/internal/utils/httpclients/gemini"
	"model-gateway/services/gemini-adapter/internal/utils/platformerrors"

	"golang.org/x/sync/singleflight"
)

// ModelLister is the discovery dependency, satisfied by the Gemini model client.
type ModelLister interface {
	ListModels(ctx context.Context, apiKey string) ([]gemini.ModelRecord, error)
}

// CredentialProvider supplies the upstream API key when one is configured.
type CredentialProvider interface {
	APIKey(ctx context.Context) (string, bool)
}

type catalogCache struct {
	models    []Model
	expiresAt time.Time
}

// CatalogService serves the model catalog, preferring live discovery and
// degrading to the static catalog on any failure. ListModels never fails.
type CatalogService struct {
	discovery   ModelLister
	credentials CredentialProvider
	static      []Model
	ttl         time.Duration
	now         func() time.Time

	flight singleflight.Group
	mu     sync.Mutex
	cache  *catalogCache
}

func NewCatalogService(discovery ModelLister, credentials CredentialProvider, static []Model, ttl time.Duration) *CatalogService {
	return &CatalogService{
		discovery:   discovery,
		credentials: credentials,
		static:      static,
		ttl:         ttl,
		now:         time.Now,
	}
}

// WithClock overrides the service clock. Intended for tests.
func (s *CatalogService) WithClock(now func() time.Time) *CatalogService {
	s.now = now
	return s
}

// StaticCatalog returns the configured fallback catalog.
func (s *CatalogService) StaticCatalog() []Model {
	return s.static
}

// DefaultModel returns the default entry of the given catalog.
func (s *CatalogService) DefaultModel(models []Model) (Model, bool) {
	return functional.Find(models, func(m Model) bool { return m.IsDefault })
}

// FindModel looks up a model by id in the current catalog.
func (s *CatalogService) FindModel(ctx context.Context, id string) (Model, bool) {
	return functional.Find(s.ListModels(ctx), func(m Model) bool { return m.ID == id })
}

// ListModels returns the current catalog. A fresh cache entry is returned as
// is, otherwise one discovery attempt runs and every failure folds into the
// static catalog without touching the cache, so the next call retries.
// Concurrent callers during a cache miss share a single discovery.
func (s *CatalogService) ListModels(ctx context.Context) []Model {
	if models, ok := s.cachedModels(); ok {
		metrics.CatalogCacheHitsTotal.Inc()
		return models
	}

	result, _, _ := s.flight.Do("discover", func() (any, error) {
		// Another caller may have refreshed the cache while this one
		// waited on the flight group.
		if models, ok := s.cachedModels(); ok {
			return models, nil
		}

		models, err := s.discover(ctx)
		if err != nil {
			s.recordFailure(ctx, err)
			metrics.CatalogFallbackTotal.Inc()
			return s.static, nil
		}

		metrics.RecordDiscovery(metrics.OutcomeSuccess)
		s.storeCache(models)
		return models, nil
	})

	return result.([]Model)
}

// Refresh forces a discovery attempt and updates the cache on success. Used
// by the periodic sync job. Failures are logged and leave the cache alone.
func (s *CatalogService) Refresh(ctx context.Context) error {
	models, err := s.discover(ctx)
	if err != nil {
		s.recordFailure(ctx, err)
		return err
	}

	metrics.RecordDiscovery(metrics.OutcomeSuccess)
	s.storeCache(models)
	log := logger.GetLogger()
	log.Info().Int("models", len(models)).Msg("model catalog refreshed")
	return nil
}

func (s *CatalogService) discover(ctx context.Context) ([]Model, error) {
	apiKey, ok := s.credentials.APIKey(ctx)
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized, "no gemini credential available", nil, "1f7a9c3e-5b2d-4d88-a6f4-0c9e8b7d6a5f")
	}

	records, err := s.discovery.ListModels(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	models := SelectModels(records)
	if len(models) == 0 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound, "no models survived selection", nil, "b3d5f7a9-1c2e-4836-9a0b-7e6d5c4b3a29")
	}
	return models, nil
}

func (s *CatalogService) cachedModels() ([]Model, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache != nil && s.cache.expiresAt.After(s.now()) {
		return s.cache.models, true
	}
	return nil, false
}

func (s *CatalogService) storeCache(models []Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = &catalogCache{
		models:    models,
		expiresAt: s.now().Add(s.ttl),
	}
}

func (s *CatalogService) recordFailure(ctx context.Context, err error) {
	outcome := metrics.OutcomeTransportFailure
	switch {
	case platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnauthorized):
		outcome = metrics.OutcomeMissingCredential
	case platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation):
		outcome = metrics.OutcomeMalformedResponse
	case platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound):
		outcome = metrics.OutcomeEmptyAfterFilter
	}
	metrics.RecordDiscovery(outcome)

	var platformErr *platformerrors.PlatformError
	if pe, ok := err.(*platformerrors.PlatformError); ok {
		platformErr = pe
	} else {
		platformErr = platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "model discovery failed")
	}
	platformerrors.LogError(logger.GetLogger(), platformErr)
}
