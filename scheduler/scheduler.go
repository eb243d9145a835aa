// Package scheduler periodically refreshes the property catalog in the
// background so visitors rarely hit a cold cache.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"inmobiliaria-premium/config"
	"inmobiliaria-premium/service"
)

type Scheduler struct {
	cfg     *config.Config
	catalog service.CatalogServiceInterface
	cron    *cron.Cron
	ticker  *time.Ticker
	stopCh  chan struct{}
}

func New(cfg *config.Config, catalog service.CatalogServiceInterface) *Scheduler {
	return &Scheduler{
		cfg:     cfg,
		catalog: catalog,
		cron:    cron.New(),
		stopCh:  make(chan struct{}),
	}
}

// Start begins the background refresh loop. A cron expression takes
// precedence over the fixed interval; with neither configured the
// catalog only refreshes on demand.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.cfg.RefreshCron != "" {
		log.Printf("⏰ Refreshing catalog on cron: %s", s.cfg.RefreshCron)
		_, err := s.cron.AddFunc(s.cfg.RefreshCron, func() {
			s.refresh(ctx)
		})
		if err != nil {
			return fmt.Errorf("invalid cron expression: %w", err)
		}
		s.cron.Start()
	} else if s.cfg.RefreshInterval > 0 {
		log.Printf("⏰ Refreshing catalog every %s", s.cfg.RefreshInterval)
		s.ticker = time.NewTicker(s.cfg.RefreshInterval)
		go func() {
			for {
				select {
				case <-s.ticker.C:
					s.refresh(ctx)
				case <-s.stopCh:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	} else {
		log.Println("⏰ No refresh schedule configured, catalog refreshes on demand only")
	}

	return nil
}

func (s *Scheduler) refresh(ctx context.Context) {
	if _, err := s.catalog.GetProperties(ctx, true); err != nil {
		log.Printf("❌ Scheduled refresh error: %v", err)
	}
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.stopCh)
}
