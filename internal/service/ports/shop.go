package ports

import (
	"context"

	"github.com/vansh017/appointment-salon/internal/domain"
)

type ShopRepo interface {
	Create(ctx context.Context, shop *domain.Shop) error
	Update(ctx context.Context, shop *domain.Shop) error
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
	GetOffering(ctx context.Context, shopID, serviceID string) (*domain.ServiceOffering, error)
	ListStats(ctx context.Context) ([]domain.ShopStats, error)
}
