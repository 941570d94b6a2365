package crontab

import (
	"context"
	"fmt"
	"time"

	"model-gateway/services/gemini-adapter/internal/config"
	"model-gateway/services/gemini-adapter/internal/domain/model"
	"model-gateway/services/gemini-adapter/internal/infrastructure/logger"
	"model-gateway/services/gemini-adapter/internal/utils/platformerrors"

	"github.com/mileusna/crontab"
)

const (
	DefaultModelSyncInterval = 15              // in minutes
	CronJobTimeout           = 2 * time.Minute // Timeout for each cron job execution
)

// Crontab keeps the model catalog warm by refreshing it on a schedule, so
// interactive requests rarely pay the discovery round trip.
type Crontab struct {
	ctab           *crontab.Crontab
	catalogService *model.CatalogService
}

func NewCrontab(catalogService *model.CatalogService) *Crontab {
	return &Crontab{
		ctab:           crontab.New(),
		catalogService: catalogService,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()
	// execute once on server start
	c.refreshCatalog(ctx)

	cfg := config.GetGlobal()
	if cfg != nil && cfg.ModelSyncEnabled {
		syncInterval := cfg.ModelSyncIntervalMinutes
		if syncInterval <= 0 {
			syncInterval = DefaultModelSyncInterval
		}

		cronExpr := fmt.Sprintf("*/%d * * * *", syncInterval)
		if err := c.ctab.AddJob(cronExpr, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.refreshCatalog(jobCtx)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add model sync job")
		}
		log.Info().Msgf("Model catalog sync scheduled: every %d minute(s)", syncInterval)
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) refreshCatalog(ctx context.Context) {
	if err := c.catalogService.Refresh(ctx); err != nil {
		// Refresh already logged the failure with full detail. Interactive
		// requests keep working off the cache or the static catalog.
		log := logger.GetLogger()
		log.Warn().Msg("scheduled model catalog refresh failed")
	}
}
