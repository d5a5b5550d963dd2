package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vansh017/appointment-salon/internal/domain"
	"github.com/vansh017/appointment-salon/internal/queue"
	"github.com/vansh017/appointment-salon/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// QueuePolicy tunes admission behavior without touching the invariants.
type QueuePolicy struct {
	// CustomerCancelInProgress lets customers cancel an entry that is
	// already being served. Owners always can.
	CustomerCancelInProgress bool
	// RetainFinished is how long completed/cancelled entries stay in the
	// queue state before eviction.
	RetainFinished time.Duration
}

type QueueService struct {
	engine   *queue.Engine
	shops    ports.ShopRepo
	history  ports.HistoryRepo
	notifier ports.QueueNotifier
	policy   QueuePolicy
	logger   logger.Logger
}

func NewQueueService(
	engine *queue.Engine,
	shops ports.ShopRepo,
	history ports.HistoryRepo,
	notifier ports.QueueNotifier,
	policy QueuePolicy,
	logger logger.Logger,
) *QueueService {
	return &QueueService{
		engine:   engine,
		shops:    shops,
		history:  history,
		notifier: notifier,
		policy:   policy,
		logger:   logger,
	}
}

// Join admits a customer into a shop's queue. Reference data is fetched
// before the engine is touched, so no I/O happens inside the per-shop
// critical section. On ErrActiveEntryExists the customer's existing entry
// is returned so the caller can reconcile.
func (s *QueueService) Join(ctx context.Context, shopID, customerID, serviceID string) (*domain.QueueEntry, error) {
	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("check shop: %w", err)
	}

	offering, err := s.shops.GetOffering(ctx, shopID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("check offering: %w", err)
	}

	entry, err := s.engine.Join(queue.JoinRequest{
		ShopID:          shopID,
		CustomerID:      customerID,
		ServiceID:       serviceID,
		DurationMinutes: offering.DurationMinutes,
		Price:           offering.Price,
		Capacity:        shop.Chairs,
	})
	if err != nil {
		return entry, err
	}

	s.logger.Info("queue entry created",
		logger.String("entry_id", entry.ID),
		logger.String("shop_id", shopID),
		logger.String("customer_id", customerID),
		logger.Int64("position", entry.Position),
	)

	go s.notifier.NotifyJoined(context.WithoutCancel(ctx), shop, entry)

	return entry, nil
}

// Advance moves an entry forward one lifecycle step.
func (s *QueueService) Advance(ctx context.Context, shopID, entryID string) (*domain.QueueEntry, error) {
	entry, err := s.engine.Advance(shopID, entryID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("queue entry advanced",
		logger.String("entry_id", entry.ID),
		logger.String("shop_id", shopID),
		logger.String("status", string(entry.Status)),
	)

	if entry.Status == domain.StatusInProgress {
		s.notifyAsync(ctx, shopID, entry, s.notifier.NotifyStarted)
	}

	return entry, nil
}

// Cancel terminates an active entry. Cancelling an in_progress entry is an
// owner action unless policy says otherwise; the flag is policy, not an
// invariant, so the status check here is advisory.
func (s *QueueService) Cancel(ctx context.Context, shopID, entryID string, actor domain.Actor) (*domain.QueueEntry, error) {
	if actor == domain.ActorCustomer && !s.policy.CustomerCancelInProgress {
		current, err := s.engine.Entry(shopID, entryID)
		if err != nil {
			return nil, err
		}
		if current.Status == domain.StatusInProgress {
			return nil, domain.ErrCancelNotPermitted
		}
	}

	entry, err := s.engine.Cancel(shopID, entryID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("queue entry cancelled",
		logger.String("entry_id", entry.ID),
		logger.String("shop_id", shopID),
		logger.String("actor", string(actor)),
	)

	s.notifyAsync(ctx, shopID, entry, s.notifier.NotifyCancelled)

	return entry, nil
}

// GetQueue returns the active queue with estimates recomputed from a fresh
// snapshot, never from a cache.
func (s *QueueService) GetQueue(ctx context.Context, shopID string) (*domain.QueueView, error) {
	if _, err := s.shops.GetByID(ctx, shopID); err != nil {
		return nil, fmt.Errorf("check shop: %w", err)
	}

	snap := s.engine.Snapshot(shopID)

	view := &domain.QueueView{
		ShopID:             shopID,
		Version:            snap.Version,
		AverageWaitMinutes: queue.AverageWait(snap.Entries),
		Entries:            make([]domain.QueueEntryView, 0, len(snap.Entries)),
	}
	for _, e := range snap.Entries {
		wait, err := queue.EstimateWait(snap.Entries, e.ID)
		if err != nil {
			return nil, fmt.Errorf("estimate wait: %w", err)
		}
		view.Entries = append(view.Entries, domain.QueueEntryView{QueueEntry: e, WaitMinutes: wait})
	}

	return view, nil
}

// EvictFinished drops finished entries past retention and writes completed
// ones to service history.
func (s *QueueService) EvictFinished(ctx context.Context) ([]domain.QueueEntry, error) {
	cutoff := time.Now().UTC().Add(-s.policy.RetainFinished)
	completed := s.engine.EvictFinished(cutoff)

	for _, entry := range completed {
		rec := &domain.ServiceRecord{
			ID:             uuid.New().String(),
			ShopID:         entry.ShopID,
			CustomerID:     entry.CustomerID,
			ServiceID:      entry.ServiceID,
			ActualDuration: actualMinutes(entry),
			// Price was captured on the entry at join, so a later catalog
			// price change never rewrites history.
			Price:       entry.Price,
			CompletedAt: *entry.FinishedAt,
		}
		if err := s.history.Record(ctx, rec); err != nil {
			s.logger.Error("failed to record service history",
				logger.String("entry_id", entry.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return completed, nil
}

func (s *QueueService) notifyAsync(
	ctx context.Context,
	shopID string,
	entry *domain.QueueEntry,
	notify func(context.Context, *domain.Shop, *domain.QueueEntry),
) {
	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		s.logger.Error("failed to get shop for notification",
			logger.String("shop_id", shopID),
			logger.String("error", err.Error()),
		)
		return
	}
	go notify(context.WithoutCancel(ctx), shop, entry)
}

func actualMinutes(entry domain.QueueEntry) int {
	if entry.StartedAt == nil || entry.FinishedAt == nil {
		return entry.DurationMinutes
	}
	m := int(entry.FinishedAt.Sub(*entry.StartedAt).Round(time.Minute) / time.Minute)
	if m < 1 {
		m = 1
	}
	return m
}
