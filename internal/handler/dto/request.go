package dto

type JoinQueueRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	ServiceID  string `json:"service_id" binding:"required,uuid"`
}

type CancelRequest struct {
	Actor string `json:"actor" binding:"omitempty,oneof=customer owner"`
}

type OfferingRequest struct {
	ServiceID       string  `json:"service_id" binding:"required,uuid"`
	Price           float64 `json:"price" binding:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
}

type CreateShopRequest struct {
	Name        string            `json:"name" binding:"required"`
	Address     string            `json:"address" binding:"required"`
	Description string            `json:"description"`
	Chairs      int               `json:"chairs" binding:"omitempty,gt=0"`
	OwnerChatID *int64            `json:"owner_chat_id"`
	Services    []OfferingRequest `json:"services" binding:"required,min=1,dive"`
}

type UpdateShopRequest struct {
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Description string            `json:"description"`
	Services    []OfferingRequest `json:"services" binding:"omitempty,dive"`
}
