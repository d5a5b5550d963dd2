package scheduler

import (
	"context"
	"time"

	"github.com/vansh017/appointment-salon/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type queueEvictor interface {
	EvictFinished(ctx context.Context) ([]domain.QueueEntry, error)
}

// Scheduler periodically sweeps finished queue entries into the service
// history.
type Scheduler struct {
	queueService queueEvictor
	interval     time.Duration
	logger       logger.Logger
}

func New(
	queueService queueEvictor,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		queueService: queueService,
		interval:     interval,
		logger:       logger,
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
	evicted, err := s.queueService.EvictFinished(ctx)
	if err != nil {
		s.logger.Error("failed to evict finished entries",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range evicted {
		s.logger.Info("queue entry evicted",
			logger.String("entry_id", e.ID),
			logger.String("shop_id", e.ShopID),
			logger.String("status", string(e.Status)),
		)
	}
}
