package ports

import (
	"context"

	"github.com/vansh017/appointment-salon/internal/domain"
)

type ServiceRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}
