package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vansh017/appointment-salon/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type HistoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHistoryRepo(db *dbpg.DB) *HistoryRepository {
	return &HistoryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *HistoryRepository) Record(ctx context.Context, rec *domain.ServiceRecord) error {
	query := `INSERT INTO service_history (id, shop_id, customer_id, service_id, price, actual_duration, completed_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rec.ID, rec.ShopID, rec.CustomerID, rec.ServiceID,
		rec.Price, rec.ActualDuration, rec.CompletedAt, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert service history: %w", err)
	}

	return nil
}
