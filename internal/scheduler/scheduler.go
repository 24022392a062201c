package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type holdSweeper interface {
	ExpireHolds(ctx context.Context) (int, error)
}

// Scheduler runs the hold sweep on a fixed interval until ctx is done.
type Scheduler struct {
	sweeper  holdSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sweeper holdSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.sweeper.ExpireHolds(ctx)
	if err != nil {
		s.logger.Error("failed to expire holds",
			logger.String("error", err.Error()),
		)
		return
	}

	if expired > 0 {
		s.logger.Debug("sweep finished",
			logger.Int("expired", expired),
		)
	}
}
