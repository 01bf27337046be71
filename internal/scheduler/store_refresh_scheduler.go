package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/zubalebr/contestacoes-backend/internal/app/service"
	"github.com/zubalebr/contestacoes-backend/pkg/logger"
)

// StoreRefreshScheduler keeps the store-list cache warm so form loads
// rarely pay spreadsheet latency.
type StoreRefreshScheduler struct {
	cron         *cron.Cron
	storeService service.StoreService
}

func NewStoreRefreshScheduler(storeService service.StoreService) *StoreRefreshScheduler {
	return &StoreRefreshScheduler{
		cron:         cron.New(),
		storeService: storeService,
	}
}

// Start schedules an hourly refresh, matching the cache TTL.
func (s *StoreRefreshScheduler) Start() error {
	_, err := s.cron.AddFunc("@every 1h", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.storeService.Refresh(ctx); err != nil {
			logger.Error("Scheduled store list refresh failed", err)
			return
		}
	})

	if err != nil {
		logger.Error("Failed to add cron job for store list refresh", err)
		return err
	}

	s.cron.Start()
	logger.Info("Store refresh scheduler started (hourly)", nil)

	return nil
}

// Stop halts the scheduler.
func (s *StoreRefreshScheduler) Stop() {
	logger.Info("Stopping store refresh scheduler...", nil)
	s.cron.Stop()
}
