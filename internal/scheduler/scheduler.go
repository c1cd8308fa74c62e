// Package scheduler wires up the cron job that periodically runs the alert
// sweep across all profiles and active listings.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/Harshitasingh-co/VidyaMitra/internal/service"
)

// Scheduler wraps robfig/cron and manages the alert sweep loop.
type Scheduler struct {
	cron *cron.Cron
	svc  *service.Service
	spec string // cron spec, e.g. "@every 24h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(svc *service.Service, intervalHours int) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger)),
		svc:  svc,
		spec: fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one sweep
// immediately so due alerts fire without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	go s.runSweep(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

func (s *Scheduler) runSweep(ctx context.Context) {
	log.Println("[scheduler] Alert sweep started")
	if err := s.svc.EvaluateDailyAlerts(ctx); err != nil {
		log.Printf("[scheduler] Alert sweep error: %v", err)
		return
	}
	log.Println("[scheduler] Alert sweep complete")
}
