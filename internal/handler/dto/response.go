package dto

import (
	"time"

	"github.com/vansh017/appointment-salon/internal/domain"
)

type QueueEntryResponse struct {
	ID              string  `json:"id"`
	ShopID          string  `json:"shop_id"`
	CustomerID      string  `json:"customer_id"`
	ServiceID       string  `json:"service_id"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Position        int64   `json:"position"`
	Status          string  `json:"status"`
	JoinedAt        string  `json:"joined_at"`
}

type QueueEntryViewResponse struct {
	QueueEntryResponse
	WaitMinutes int `json:"wait_minutes"`
}

type QueueViewResponse struct {
	ShopID             string                   `json:"shop_id"`
	Version            int64                    `json:"version"`
	AverageWaitMinutes int                      `json:"average_wait_minutes"`
	Entries            []QueueEntryViewResponse `json:"entries"`
}

type OfferingResponse struct {
	ServiceID       string  `json:"service_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

type ShopResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Address     string             `json:"address"`
	Description string             `json:"description"`
	Rating      float64            `json:"rating"`
	Chairs      int                `json:"chairs"`
	Services    []OfferingResponse `json:"services"`
	CreatedAt   string             `json:"created_at"`
}

type ShopSummaryResponse struct {
	ShopID       string  `json:"shop_id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	QueueLength  int     `json:"queue_length"`
	AveragePrice float64 `json:"average_price"`
	Rating       float64 `json:"rating"`
	IsAvailable  bool    `json:"is_available"`
}

type CatalogResponse struct {
	Shops      []ShopSummaryResponse `json:"shops"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"total_pages"`
}

type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DefaultDuration int    `json:"default_duration"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictResponse carries the authoritative entry alongside the error so a
// duplicate join can be reconciled without a blind retry.
type ConflictResponse struct {
	Error string             `json:"error"`
	Entry QueueEntryResponse `json:"entry"`
}

func ToQueueEntryResponse(e *domain.QueueEntry) QueueEntryResponse {
	return QueueEntryResponse{
		ID:              e.ID,
		ShopID:          e.ShopID,
		CustomerID:      e.CustomerID,
		ServiceID:       e.ServiceID,
		DurationMinutes: e.DurationMinutes,
		Price:           e.Price,
		Position:        e.Position,
		Status:          string(e.Status),
		JoinedAt:        e.JoinedAt.Format(time.RFC3339),
	}
}

func ToQueueViewResponse(v *domain.QueueView) QueueViewResponse {
	entries := make([]QueueEntryViewResponse, 0, len(v.Entries))
	for _, e := range v.Entries {
		entries = append(entries, QueueEntryViewResponse{
			QueueEntryResponse: ToQueueEntryResponse(&e.QueueEntry),
			WaitMinutes:        e.WaitMinutes,
		})
	}

	return QueueViewResponse{
		ShopID:             v.ShopID,
		Version:            v.Version,
		AverageWaitMinutes: v.AverageWaitMinutes,
		Entries:            entries,
	}
}

func ToShopResponse(s *domain.Shop) ShopResponse {
	services := make([]OfferingResponse, 0, len(s.Services))
	for _, o := range s.Services {
		services = append(services, OfferingResponse{
			ServiceID:       o.ServiceID,
			Name:            o.Name,
			Price:           o.Price,
			DurationMinutes: o.DurationMinutes,
		})
	}

	return ShopResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Description: s.Description,
		Rating:      s.Rating,
		Chairs:      s.Chairs,
		Services:    services,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func ToCatalogResponse(summaries []domain.ShopSummary, page, totalPages int) CatalogResponse {
	shops := make([]ShopSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		shops = append(shops, ShopSummaryResponse{
			ShopID:       s.ShopID,
			Name:         s.Name,
			Address:      s.Address,
			QueueLength:  s.QueueLength,
			AveragePrice: s.AveragePrice,
			Rating:       s.Rating,
			IsAvailable:  s.IsAvailable,
		})
	}

	return CatalogResponse{Shops: shops, Page: page, TotalPages: totalPages}
}

func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DefaultDuration: s.DefaultDuration,
	}
}
