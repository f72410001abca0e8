package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/solemate/solemate-backend/internal/app/service"
	"github.com/solemate/solemate-backend/pkg/logger"
)

// CatalogScheduler periodically reloads the serving snapshot from the
// database. The catalog is maintained out-of-band (importer, manual edits);
// the schedule bounds how stale the in-memory view can get.
type CatalogScheduler struct {
	cron           *cron.Cron
	catalogService service.CatalogService
	spec           string
}

func NewCatalogScheduler(catalogService service.CatalogService, spec string) *CatalogScheduler {
	return &CatalogScheduler{
		cron:           cron.New(),
		catalogService: catalogService,
		spec:           spec,
	}
}

// Start registers the reload job and starts the scheduler.
func (s *CatalogScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		logger.Info("Starting scheduled catalog reload", nil)

		if err := s.catalogService.Reload(context.Background()); err != nil {
			// Keep serving the previous snapshot; the next tick retries.
			logger.Error("Scheduled catalog reload failed", err)
			return
		}

		logger.Info("Scheduled catalog reload completed", nil)
	})
	if err != nil {
		logger.Error("Failed to add cron job for catalog reload", err, map[string]interface{}{
			"spec": s.spec,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Catalog scheduler started successfully", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

// Stop stops the scheduler.
func (s *CatalogScheduler) Stop() {
	logger.Info("Stopping catalog scheduler...")
	s.cron.Stop()
	logger.Info("Catalog scheduler stopped")
}
