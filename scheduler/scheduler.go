// Package scheduler runs the periodic low stock check of pl serve.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/etnz/partsledger"
)

// StockSource provides the current stock. Refresh reloads it from the
// store, where other processes may have written.
type StockSource interface {
	Refresh(ctx context.Context) error
	Stock() []partsledger.StockItem
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	source    StockSource
	schedule  string
	threshold int64
	logger    *zap.Logger
}

// New creates a scheduler that checks the stock of source on schedule, a
// standard cron expression or a descriptor like "@every 1h".
func New(source StockSource, schedule string, threshold int64, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:      cron.New(),
		source:    source,
		schedule:  schedule,
		threshold: threshold,
		logger:    logger,
	}
}

// Start schedules the low stock check and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, func() { s.CheckLowStock() }); err != nil {
		s.logger.Error("failed to schedule low stock check", zap.Error(err))
		return err
	}
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running check to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// CheckLowStock logs a warning for every part below the threshold and
// returns them.
func (s *Scheduler) CheckLowStock() []partsledger.StockItem {
	if err := s.source.Refresh(context.Background()); err != nil {
		s.logger.Error("failed to reload the ledgers, checking the last known stock", zap.Error(err))
	}
	low := partsledger.LowStock(s.source.Stock(), s.threshold)
	for _, item := range low {
		s.logger.Warn("low stock",
			zap.Stringer("part", item.PartKey),
			zap.Int64("quantity", item.Quantity),
			zap.Int64("threshold", s.threshold))
	}
	s.logger.Info("low stock check done", zap.Int("low", len(low)))
	return low
}
