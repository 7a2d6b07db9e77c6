package scheduler

import (
	"context"
	"log/slog"
	"time"

	"trend_sentinel/internal/domain"
)

// Scanner runs one full scan cycle.
type Scanner interface {
	Scan(ctx context.Context) (*domain.ScanReport, error)
}

type Scheduler struct {
	scanner      Scanner
	interval     time.Duration
	cycleTimeout time.Duration
	logger       *slog.Logger
}

func NewScheduler(scanner Scanner, interval, cycleTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		scanner:      scanner,
		interval:     interval,
		cycleTimeout: cycleTimeout,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "cycle_timeout", s.cycleTimeout)

	s.runScan(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runScan(ctx)
		}
	}
}

func (s *Scheduler) runScan(ctx context.Context) {
	scanCtx, cancel := context.WithTimeout(ctx, s.cycleTimeout)
	defer cancel()

	if _, err := s.scanner.Scan(scanCtx); err != nil {
		s.logger.Error("scan failed", "error", err)
	}
}
