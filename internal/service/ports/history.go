package ports

import (
	"context"

	"github.com/vansh017/appointment-salon/internal/domain"
)

type HistoryRepo interface {
	Record(ctx context.Context, rec *domain.ServiceRecord) error
}
