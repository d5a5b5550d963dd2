package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vansh017/appointment-salon/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ServiceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewServiceRepo(db *dbpg.DB) *ServiceRepository {
	return &ServiceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	query := `SELECT id, name, description, default_duration
			  FROM services
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	var s domain.Service
	if err = row.Scan(&s.ID, &s.Name, &s.Description, &s.DefaultDuration); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("scan service: %w", err)
	}

	return &s, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	query := `SELECT id, name, description, default_duration
			  FROM services
			  ORDER BY name`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var res []*domain.Service
	for rows.Next() {
		var s domain.Service
		if err = rows.Scan(&s.ID, &s.Name, &s.Description, &s.DefaultDuration); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
