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

type lengthsStub map[string]int

func (s lengthsStub) Lengths() map[string]int { return s }

func catalogFixture(t *testing.T, lengths lengthsStub, threshold int) (*CatalogService, *mocks.MockShopRepo) {
	t.Helper()
	shops := mocks.NewMockShopRepo(t)
	return NewCatalogService(shops, lengths, threshold), shops
}

func stats() []domain.ShopStats {
	return []domain.ShopStats{
		{ShopID: "a", Name: "Elite Cuts", Rating: 4.8, AveragePrice: 37.5},
		{ShopID: "b", Name: "Modern Salon", Rating: 4.6, AveragePrice: 60},
		{ShopID: "c", Name: "Budget Barber", Rating: 4.4, AveragePrice: 15},
		{ShopID: "d", Name: "Classic Cuts", Rating: 4.5, AveragePrice: 25},
	}
}

func TestCatalog_List_MinRatingInclusive(t *testing.T) {
	svc, shops := catalogFixture(t, lengthsStub{}, 5)
	shops.EXPECT().ListStats(mock.Anything).Return(stats(), nil)

	out, pages, err := svc.List(context.Background(), domain.CatalogParams{MinRating: 4.5, SortBy: domain.SortByRating, SortOrder: domain.SortDesc, Page: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, pages)
	ids := summaryIDs(out)
	assert.NotContains(t, ids, "c", "rating 4.4 excluded by min_rating 4.5")
	assert.Contains(t, ids, "d", "rating 4.5 included, bound is inclusive")
}

func TestCatalog_List_MaxPriceInclusive(t *testing.T) {
	svc, shops := catalogFixture(t, lengthsStub{}, 5)
	shops.EXPECT().ListStats(mock.Anything).Return(stats(), nil)

	maxPrice := 25.0
	out, _, err := svc.List(context.Background(), domain.CatalogParams{MaxPrice: &maxPrice, Page: 1})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c", "d"}, summaryIDs(out))
}

func TestCatalog_List_SearchByName(t *testing.T) {
	svc, shops := catalogFixture(t, lengthsStub{}, 5)
	shops.EXPECT().ListStats(mock.Anything).Return(stats(), nil)

	out, _, err := svc.List(context.Background(), domain.CatalogParams{Search: "cuts", Page: 1})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "d"}, summaryIDs(out))
}

func TestCatalog_List_QueueLengthTiebreakByShopID(t *testing.T) {
	lengths := lengthsStub{"a": 2, "b": 1, "c": 2, "d": 1}
	svc, shops := catalogFixture(t, lengths, 5)
	shops.EXPECT().ListStats(mock.Anything).Return(stats(), nil)

	// Two calls must produce identical order for pagination to be stable.
	for i := 0; i < 2; i++ {
		out, _, err := svc.List(context.Background(), domain.CatalogParams{SortBy: domain.SortByQueueLength, SortOrder: domain.SortAsc, Page: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "d", "a", "c"}, summaryIDs(out))
	}
}

func TestCatalog_List_SortByPriceDesc(t *testing.T) {
	svc, shops := catalogFixture(t, lengthsStub{}, 5)
	shops.EXPECT().ListStats(mock.Anything).Return(stats(), nil)

	out, _, err := svc.List(context.Background(), domain.CatalogParams{SortBy: domain.SortByAveragePrice, SortOrder: domain.SortDesc, Page: 1})

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "d", "c"}, summaryIDs(out))
}

func TestCatalog_List_Availability(t *testing.T) {
	lengths := lengthsStub{"a": 3, "b": 1}
	svc, shops := catalogFixture(t, lengths, 3)
	shops.EXPECT().ListStats(mock.Anything).Return(stats(), nil)

	out, _, err := svc.List(context.Background(), domain.CatalogParams{Page: 1})
	require.NoError(t, err)

	byID := make(map[string]domain.ShopSummary)
	for _, s := range out {
		byID[s.ShopID] = s
	}
	assert.False(t, byID["a"].IsAvailable, "queue length at threshold")
	assert.True(t, byID["b"].IsAvailable)
	assert.True(t, byID["c"].IsAvailable, "no live queue state means empty queue")
}

func TestCatalog_List_Pagination(t *testing.T) {
	svc, shops := catalogFixture(t, lengthsStub{}, 5)
	shops.EXPECT().ListStats(mock.Anything).Return(stats(), nil)

	out, pages, err := svc.List(context.Background(), domain.CatalogParams{PageSize: 3, Page: 2})

	require.NoError(t, err)
	assert.Equal(t, 2, pages)
	assert.Len(t, out, 1)
}

func TestCatalog_List_InvalidPage(t *testing.T) {
	svc, shops := catalogFixture(t, lengthsStub{}, 5)
	shops.EXPECT().ListStats(mock.Anything).Return(stats(), nil).Maybe()

	_, _, err := svc.List(context.Background(), domain.CatalogParams{Page: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidPage)

	_, _, err = svc.List(context.Background(), domain.CatalogParams{Page: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidPage, "page zero is not a default, it is out of range")

	_, _, err = svc.List(context.Background(), domain.CatalogParams{PageSize: 3, Page: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidPage)
}

func TestCatalog_List_EmptyResultZeroPages(t *testing.T) {
	svc, shops := catalogFixture(t, lengthsStub{}, 5)
	shops.EXPECT().ListStats(mock.Anything).Return(stats(), nil)

	out, pages, err := svc.List(context.Background(), domain.CatalogParams{MinRating: 5, Page: 1})

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 0, pages)
}

func TestCatalog_List_UnknownSortKey(t *testing.T) {
	svc, _ := catalogFixture(t, lengthsStub{}, 5)

	_, _, err := svc.List(context.Background(), domain.CatalogParams{SortBy: "name"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func summaryIDs(summaries []domain.ShopSummary) []string {
	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.ShopID)
	}
	return ids
}
