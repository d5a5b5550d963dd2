package domain

import "time"

type Shop struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Description string            `json:"description"`
	Rating      float64           `json:"rating"`
	Chairs      int               `json:"chairs"`
	OwnerChatID *int64            `json:"owner_chat_id,omitempty"`
	Services    []ServiceOffering `json:"services"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type ServiceOffering struct {
	ServiceID       string  `json:"service_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// Service is a catalog entry shops pick offerings from.
type Service struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DefaultDuration int    `json:"default_duration"`
}

// ShopSummary is derived on demand from queue state and reference data,
// never stored.
type ShopSummary struct {
	ShopID       string  `json:"shop_id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	QueueLength  int     `json:"queue_length"`
	AveragePrice float64 `json:"average_price"`
	Rating       float64 `json:"rating"`
	IsAvailable  bool    `json:"is_available"`
}

// ShopStats is the per-shop slice of reference data the catalog needs;
// queue length and availability are layered on from live queue state.
type ShopStats struct {
	ShopID       string
	Name         string
	Address      string
	Rating       float64
	AveragePrice float64
	Chairs       int
}

type CreateShopInput struct {
	Name        string
	Address     string
	Description string
	OwnerChatID *int64
	Chairs      int
	Services    []OfferingInput
}

type UpdateShopInput struct {
	Name        string
	Address     string
	Description string
	Services    []OfferingInput
}

type OfferingInput struct {
	ServiceID       string
	Price           float64
	DurationMinutes int
}
