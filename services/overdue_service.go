package services

import (
	"context"
	"fmt"
	"time"

	"inventory-backend/logger"

	"github.com/robfig/cron/v3"
)

// OverdueService periodically moves pending invoices past their due date to
// overdue.
type OverdueService struct {
	invoices *InvoiceService
	cron     *cron.Cron
	now      func() time.Time
}

func NewOverdueService(invoices *InvoiceService) *OverdueService {
	return &OverdueService{
		invoices: invoices,
		cron:     cron.New(),
		now:      time.Now,
	}
}

// Start schedules the sweep with a standard five-field cron spec.
func (s *OverdueService) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.Sweep); err != nil {
		return fmt.Errorf("schedule overdue sweep %q: %w", spec, err)
	}
	s.cron.Start()
	log := logger.WithComponent("overdue")
	log.Info().Str("schedule", spec).Msg("Overdue invoice sweep scheduled")
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *OverdueService) Stop() {
	<-s.cron.Stop().Done()
}

func (s *OverdueService) Sweep() {
	log := logger.WithComponent("overdue")
	marked, err := s.invoices.MarkOverdue(context.Background(), s.now())
	if err != nil {
		log.Error().Err(err).Int("marked", marked).Msg("Overdue sweep failed")
		return
	}
	log.Info().Int("marked", marked).Msg("Overdue sweep completed")
}
