package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vansh017/appointment-salon/internal/domain"
	"github.com/vansh017/appointment-salon/internal/service/ports/mocks"
)

func newShopService(t *testing.T) (*ShopService, *mocks.MockShopRepo, *mocks.MockServiceRepo) {
	t.Helper()
	repo := mocks.NewMockShopRepo(t)
	services := mocks.NewMockServiceRepo(t)
	return NewShopService(repo, services), repo, services
}

func TestShopService_Create_Success(t *testing.T) {
	svc, repo, services := newShopService(t)

	services.EXPECT().GetByID(mock.Anything, "svc1").
		Return(&domain.Service{ID: "svc1", Name: "Haircut", DefaultDuration: 30}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	shop, err := svc.Create(context.Background(), domain.CreateShopInput{
		Name:    "Elite Cuts",
		Address: "123 Main St",
		Services: []domain.OfferingInput{
			{ServiceID: "svc1", Price: 30, DurationMinutes: 30},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, shop.ID)
	assert.Equal(t, 1, shop.Chairs, "chairs default to a single slot")
	require.Len(t, shop.Services, 1)
	assert.Equal(t, "Haircut", shop.Services[0].Name)
}

func TestShopService_Create_Validation(t *testing.T) {
	svc, _, _ := newShopService(t)

	_, err := svc.Create(context.Background(), domain.CreateShopInput{Address: "123 Main St"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.CreateShopInput{Name: "Elite Cuts"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestShopService_Create_BadOffering(t *testing.T) {
	svc, _, _ := newShopService(t)

	_, err := svc.Create(context.Background(), domain.CreateShopInput{
		Name:    "Elite Cuts",
		Address: "123 Main St",
		Services: []domain.OfferingInput{
			{ServiceID: "svc1", Price: 30, DurationMinutes: 0},
		},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestShopService_Create_UnknownService(t *testing.T) {
	svc, _, services := newShopService(t)

	services.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrServiceNotFound)

	_, err := svc.Create(context.Background(), domain.CreateShopInput{
		Name:    "Elite Cuts",
		Address: "123 Main St",
		Services: []domain.OfferingInput{
			{ServiceID: "missing", Price: 30, DurationMinutes: 30},
		},
	})
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestShopService_Update_ReplacesOfferings(t *testing.T) {
	svc, repo, services := newShopService(t)

	existing := &domain.Shop{
		ID:      "s1",
		Name:    "Elite Cuts",
		Address: "123 Main St",
		Chairs:  1,
		Services: []domain.ServiceOffering{
			{ServiceID: "svc1", Name: "Haircut", Price: 30, DurationMinutes: 30},
		},
	}

	repo.EXPECT().GetByID(mock.Anything, "s1").Return(existing, nil)
	services.EXPECT().GetByID(mock.Anything, "svc2").
		Return(&domain.Service{ID: "svc2", Name: "Color"}, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.Update(context.Background(), "s1", domain.UpdateShopInput{
		Services: []domain.OfferingInput{
			{ServiceID: "svc2", Price: 85, DurationMinutes: 90},
		},
	})

	require.NoError(t, err)
	require.Len(t, updated.Services, 1)
	assert.Equal(t, "svc2", updated.Services[0].ServiceID)
}

func TestShopService_Update_NotFound(t *testing.T) {
	svc, repo, _ := newShopService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrShopNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateShopInput{})
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}
