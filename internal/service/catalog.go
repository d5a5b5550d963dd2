package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vansh017/appointment-salon/internal/domain"
	"github.com/vansh017/appointment-salon/internal/service/ports"
)

const defaultPageSize = 20

type queueLengths interface {
	Lengths() map[string]int
}

type CatalogService struct {
	shops ports.ShopRepo
	queue queueLengths
	// availabilityThreshold is the queue length at which a shop stops
	// being listed as available.
	availabilityThreshold int
}

func NewCatalogService(shops ports.ShopRepo, queue queueLengths, availabilityThreshold int) *CatalogService {
	return &CatalogService{
		shops:                 shops,
		queue:                 queue,
		availabilityThreshold: availabilityThreshold,
	}
}

// List builds shop summaries from reference data plus live queue lengths,
// then filters, sorts and paginates. Ties always break by shop id ascending
// so pagination stays deterministic across calls.
func (s *CatalogService) List(ctx context.Context, p domain.CatalogParams) ([]domain.ShopSummary, int, error) {
	if err := normalizeParams(&p); err != nil {
		return nil, 0, err
	}

	stats, err := s.shops.ListStats(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list shop stats: %w", err)
	}
	lengths := s.queue.Lengths()

	summaries := make([]domain.ShopSummary, 0, len(stats))
	for _, st := range stats {
		if st.Rating < p.MinRating {
			continue
		}
		if p.MaxPrice != nil && st.AveragePrice > *p.MaxPrice {
			continue
		}
		if p.Search != "" && !strings.Contains(strings.ToLower(st.Name), strings.ToLower(p.Search)) {
			continue
		}
		qlen := lengths[st.ShopID]
		summaries = append(summaries, domain.ShopSummary{
			ShopID:       st.ShopID,
			Name:         st.Name,
			Address:      st.Address,
			QueueLength:  qlen,
			AveragePrice: st.AveragePrice,
			Rating:       st.Rating,
			IsAvailable:  qlen < s.availabilityThreshold,
		})
	}

	sortSummaries(summaries, p.SortBy, p.SortOrder)

	totalPages := (len(summaries) + p.PageSize - 1) / p.PageSize
	if totalPages > 0 && p.Page > totalPages {
		return nil, 0, domain.ErrInvalidPage
	}
	if totalPages == 0 {
		return []domain.ShopSummary{}, 0, nil
	}

	start := (p.Page - 1) * p.PageSize
	end := start + p.PageSize
	if end > len(summaries) {
		end = len(summaries)
	}

	return summaries[start:end], totalPages, nil
}

func normalizeParams(p *domain.CatalogParams) error {
	if p.SortBy == "" {
		p.SortBy = domain.SortByQueueLength
	}
	switch p.SortBy {
	case domain.SortByQueueLength, domain.SortByAveragePrice, domain.SortByRating:
	default:
		return fmt.Errorf("%w: unknown sort_by %q", domain.ErrValidation, p.SortBy)
	}

	if p.SortOrder == "" {
		p.SortOrder = domain.SortAsc
	}
	if p.SortOrder != domain.SortAsc && p.SortOrder != domain.SortDesc {
		return fmt.Errorf("%w: unknown sort_order %q", domain.ErrValidation, p.SortOrder)
	}

	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}
	if p.Page < 1 {
		return domain.ErrInvalidPage
	}
	if p.MinRating < 0 {
		return fmt.Errorf("%w: min_rating must not be negative", domain.ErrValidation)
	}

	return nil
}

func sortSummaries(summaries []domain.ShopSummary, sortBy, sortOrder string) {
	less := func(a, b domain.ShopSummary) int {
		switch sortBy {
		case domain.SortByAveragePrice:
			return compareFloat(a.AveragePrice, b.AveragePrice)
		case domain.SortByRating:
			return compareFloat(a.Rating, b.Rating)
		default:
			return a.QueueLength - b.QueueLength
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		c := less(summaries[i], summaries[j])
		if sortOrder == domain.SortDesc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		// Tiebreak keeps repeated pagination deterministic.
		return summaries[i].ShopID < summaries[j].ShopID
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
