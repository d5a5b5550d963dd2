package ports

import (
	"context"

	"github.com/vansh017/appointment-salon/internal/domain"
)

// QueueNotifier pushes queue events to the shop owner.
type QueueNotifier interface {
	NotifyJoined(ctx context.Context, shop *domain.Shop, entry *domain.QueueEntry)
	NotifyStarted(ctx context.Context, shop *domain.Shop, entry *domain.QueueEntry)
	NotifyCancelled(ctx context.Context, shop *domain.Shop, entry *domain.QueueEntry)
}
