package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vansh017/appointment-salon/internal/domain"
	"github.com/vansh017/appointment-salon/internal/service/ports"
)

type ShopService struct {
	repo     ports.ShopRepo
	services ports.ServiceRepo
}

func NewShopService(repo ports.ShopRepo, services ports.ServiceRepo) *ShopService {
	return &ShopService{repo: repo, services: services}
}

func (s *ShopService) Create(ctx context.Context, input domain.CreateShopInput) (*domain.Shop, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Address == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrValidation)
	}
	offerings, err := s.buildOfferings(ctx, input.Services)
	if err != nil {
		return nil, err
	}

	chairs := input.Chairs
	if chairs < 1 {
		chairs = 1
	}

	now := time.Now().UTC()
	shop := &domain.Shop{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Address:     input.Address,
		Description: input.Description,
		Chairs:      chairs,
		OwnerChatID: input.OwnerChatID,
		Services:    offerings,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, shop); err != nil {
		return nil, fmt.Errorf("create shop: %w", err)
	}

	return shop, nil
}

// Update replaces the shop's offering set. Entries already queued keep the
// duration copied at join time.
func (s *ShopService) Update(ctx context.Context, id string, input domain.UpdateShopInput) (*domain.Shop, error) {
	shop, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shop: %w", err)
	}

	if input.Name != "" {
		shop.Name = input.Name
	}
	if input.Address != "" {
		shop.Address = input.Address
	}
	if input.Description != "" {
		shop.Description = input.Description
	}
	if input.Services != nil {
		offerings, err := s.buildOfferings(ctx, input.Services)
		if err != nil {
			return nil, err
		}
		shop.Services = offerings
	}
	shop.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, shop); err != nil {
		return nil, fmt.Errorf("update shop: %w", err)
	}

	return shop, nil
}

func (s *ShopService) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ShopService) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.services.List(ctx)
}

func (s *ShopService) buildOfferings(ctx context.Context, inputs []domain.OfferingInput) ([]domain.ServiceOffering, error) {
	offerings := make([]domain.ServiceOffering, 0, len(inputs))
	for _, in := range inputs {
		if in.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
		}
		if in.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: duration_minutes must be positive", domain.ErrValidation)
		}
		svc, err := s.services.GetByID(ctx, in.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("check service %s: %w", in.ServiceID, err)
		}
		offerings = append(offerings, domain.ServiceOffering{
			ServiceID:       svc.ID,
			Name:            svc.Name,
			Price:           in.Price,
			DurationMinutes: in.DurationMinutes,
		})
	}
	return offerings, nil
}
