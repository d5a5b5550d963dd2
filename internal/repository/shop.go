package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/vansh017/appointment-salon/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ShopRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewShopRepo(db *dbpg.DB) *ShopRepository {
	return &ShopRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ShopRepository) Create(ctx context.Context, s *domain.Shop) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO shops (id, name, address, description, rating, chairs, owner_chat_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, query, s.ID, s.Name, s.Address, s.Description,
		s.Rating, s.Chairs, s.OwnerChatID, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shop: %w", err)
	}

	if err = insertOfferings(ctx, tx, s.ID, s.Services); err != nil {
		return err
	}

	return tx.Commit()
}

// Update rewrites the shop row and replaces the offering set atomically.
func (r *ShopRepository) Update(ctx context.Context, s *domain.Shop) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE shops
			  SET name = $2, address = $3, description = $4, updated_at = $5
			  WHERE id = $1`
	res, err := tx.ExecContext(ctx, query, s.ID, s.Name, s.Address, s.Description, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update shop: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("shop rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrShopNotFound
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM shop_services WHERE shop_id = $1`, s.ID); err != nil {
		return fmt.Errorf("clear offerings: %w", err)
	}
	if err = insertOfferings(ctx, tx, s.ID, s.Services); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ShopRepository) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	query := `SELECT id, name, address, description, rating, chairs, owner_chat_id, created_at, updated_at
			  FROM shops
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get shop: %w", err)
	}

	var s domain.Shop
	if err = row.Scan(
		&s.ID, &s.Name, &s.Address, &s.Description,
		&s.Rating, &s.Chairs, &s.OwnerChatID, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrShopNotFound
		}
		return nil, fmt.Errorf("scan shop: %w", err)
	}

	offeringsQuery := `SELECT ss.service_id, s.name, ss.price, ss.duration_minutes
					   FROM shop_services ss
					   JOIN services s ON s.id = ss.service_id
					   WHERE ss.shop_id = $1
					   ORDER BY s.name`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, offeringsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list offerings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var o domain.ServiceOffering
		if err = rows.Scan(&o.ServiceID, &o.Name, &o.Price, &o.DurationMinutes); err != nil {
			return nil, fmt.Errorf("scan offering: %w", err)
		}
		s.Services = append(s.Services, o)
	}

	return &s, rows.Err()
}

func (r *ShopRepository) GetOffering(ctx context.Context, shopID, serviceID string) (*domain.ServiceOffering, error) {
	query := `SELECT ss.service_id, s.name, ss.price, ss.duration_minutes
			  FROM shop_services ss
			  JOIN services s ON s.id = ss.service_id
			  WHERE ss.shop_id = $1 AND ss.service_id = $2`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, shopID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("get offering: %w", err)
	}

	var o domain.ServiceOffering
	if err = row.Scan(&o.ServiceID, &o.Name, &o.Price, &o.DurationMinutes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("scan offering: %w", err)
	}

	return &o, nil
}

func (r *ShopRepository) ListStats(ctx context.Context) ([]domain.ShopStats, error) {
	query := `SELECT sh.id, sh.name, sh.address, sh.rating, sh.chairs,
					 COALESCE(AVG(ss.price), 0)
			  FROM shops sh
			  LEFT JOIN shop_services ss ON ss.shop_id = sh.id
			  GROUP BY sh.id, sh.name, sh.address, sh.rating, sh.chairs
			  ORDER BY sh.id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list shop stats: %w", err)
	}
	defer rows.Close()

	var res []domain.ShopStats
	for rows.Next() {
		var st domain.ShopStats
		if err = rows.Scan(&st.ShopID, &st.Name, &st.Address, &st.Rating, &st.Chairs, &st.AveragePrice); err != nil {
			return nil, fmt.Errorf("scan shop stats: %w", err)
		}
		res = append(res, st)
	}

	return res, rows.Err()
}

func insertOfferings(ctx context.Context, tx *sql.Tx, shopID string, offerings []domain.ServiceOffering) error {
	query := `INSERT INTO shop_services (shop_id, service_id, price, duration_minutes)
			  VALUES ($1, $2, $3, $4)`
	for _, o := range offerings {
		if _, err := tx.ExecContext(ctx, query, shopID, o.ServiceID, o.Price, o.DurationMinutes); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return domain.ErrServiceNotFound
			}
			return fmt.Errorf("insert offering: %w", err)
		}
	}
	return nil
}
