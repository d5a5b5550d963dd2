package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/vansh017/appointment-salon/internal/domain"
	"github.com/vansh017/appointment-salon/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type QueueSvc interface {
	Join(ctx context.Context, shopID, customerID, serviceID string) (*domain.QueueEntry, error)
	Advance(ctx context.Context, shopID, entryID string) (*domain.QueueEntry, error)
	Cancel(ctx context.Context, shopID, entryID string, actor domain.Actor) (*domain.QueueEntry, error)
	GetQueue(ctx context.Context, shopID string) (*domain.QueueView, error)
}

type CatalogSvc interface {
	List(ctx context.Context, p domain.CatalogParams) ([]domain.ShopSummary, int, error)
}

type ShopSvc interface {
	Create(ctx context.Context, input domain.CreateShopInput) (*domain.Shop, error)
	Update(ctx context.Context, id string, input domain.UpdateShopInput) (*domain.Shop, error)
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
}

type Handler struct {
	queueService   QueueSvc
	catalogService CatalogSvc
	shopService    ShopSvc
}

func NewHandler(queueService QueueSvc, catalogService CatalogSvc, shopService ShopSvc) *Handler {
	return &Handler{
		queueService:   queueService,
		catalogService: catalogService,
		shopService:    shopService,
	}
}

// Queue

func (h *Handler) JoinQueue(c *ginext.Context) {
	shopID := c.Param("id")
	if _, err := uuid.Parse(shopID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid shop id"})
		return
	}

	var req dto.JoinQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	entry, err := h.queueService.Join(c.Request.Context(), shopID, req.CustomerID, req.ServiceID)
	if errors.Is(err, domain.ErrActiveEntryExists) {
		// Surface the existing entry so the client reconciles instead of
		// retrying.
		c.JSON(http.StatusConflict, dto.ConflictResponse{
			Error: err.Error(),
			Entry: dto.ToQueueEntryResponse(entry),
		})
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQueueEntryResponse(entry))
}

func (h *Handler) GetQueue(c *ginext.Context) {
	shopID := c.Param("id")
	if _, err := uuid.Parse(shopID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid shop id"})
		return
	}

	view, err := h.queueService.GetQueue(c.Request.Context(), shopID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQueueViewResponse(view))
}

func (h *Handler) AdvanceEntry(c *ginext.Context) {
	shopID := c.Param("id")
	entryID := c.Param("entry_id")
	if _, err := uuid.Parse(shopID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid shop id"})
		return
	}
	if _, err := uuid.Parse(entryID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid entry id"})
		return
	}

	entry, err := h.queueService.Advance(c.Request.Context(), shopID, entryID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQueueEntryResponse(entry))
}

func (h *Handler) CancelEntry(c *ginext.Context) {
	shopID := c.Param("id")
	entryID := c.Param("entry_id")
	if _, err := uuid.Parse(shopID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid shop id"})
		return
	}
	if _, err := uuid.Parse(entryID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid entry id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	actor := domain.Actor(req.Actor)
	if actor == "" {
		actor = domain.ActorCustomer
	}

	entry, err := h.queueService.Cancel(c.Request.Context(), shopID, entryID, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQueueEntryResponse(entry))
}

// Catalog

func (h *Handler) ListShops(c *ginext.Context) {
	params, err := catalogParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	summaries, totalPages, err := h.catalogService.List(c.Request.Context(), params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCatalogResponse(summaries, params.Page, totalPages))
}

// Shops

func (h *Handler) CreateShop(c *ginext.Context) {
	var req dto.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateShopInput{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Chairs:      req.Chairs,
		OwnerChatID: req.OwnerChatID,
		Services:    toOfferingInputs(req.Services),
	}

	shop, err := h.shopService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToShopResponse(shop))
}

func (h *Handler) UpdateShop(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid shop id"})
		return
	}

	var req dto.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateShopInput{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	}
	if req.Services != nil {
		input.Services = toOfferingInputs(req.Services)
	}

	shop, err := h.shopService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShopResponse(shop))
}

func (h *Handler) GetShop(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid shop id"})
		return
	}

	shop, err := h.shopService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShopResponse(shop))
}

func (h *Handler) ListServices(c *ginext.Context) {
	services, err := h.shopService.ListServices(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, dto.ToServiceResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrShopNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrActiveEntryExists),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrShopBusy):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCancelNotPermitted):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPage):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func catalogParams(c *ginext.Context) (domain.CatalogParams, error) {
	var p domain.CatalogParams
	var err error

	if v := c.Query("min_rating"); v != "" {
		if p.MinRating, err = strconv.ParseFloat(v, 64); err != nil {
			return p, errors.New("invalid min_rating")
		}
	}
	if v := c.Query("max_price"); v != "" {
		maxPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, errors.New("invalid max_price")
		}
		p.MaxPrice = &maxPrice
	}
	// Absent means first page; an explicit page=0 is the client's error
	// and is rejected downstream.
	p.Page = 1
	if v := c.Query("page"); v != "" {
		if p.Page, err = strconv.Atoi(v); err != nil {
			return p, errors.New("invalid page")
		}
	}
	if v := c.Query("page_size"); v != "" {
		if p.PageSize, err = strconv.Atoi(v); err != nil {
			return p, errors.New("invalid page_size")
		}
	}
	p.Search = c.Query("search")
	p.SortBy = c.Query("sort_by")
	p.SortOrder = c.Query("sort_order")

	return p, nil
}

func toOfferingInputs(reqs []dto.OfferingRequest) []domain.OfferingInput {
	inputs := make([]domain.OfferingInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, domain.OfferingInput{
			ServiceID:       r.ServiceID,
			Price:           r.Price,
			DurationMinutes: r.DurationMinutes,
		})
	}
	return inputs
}
