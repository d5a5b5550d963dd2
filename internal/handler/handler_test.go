package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vansh017/appointment-salon/internal/domain"
	"github.com/vansh017/appointment-salon/internal/handler/dto"
	hmocks "github.com/vansh017/appointment-salon/internal/handler/mocks"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockQueueSvc, *hmocks.MockCatalogSvc, *hmocks.MockShopSvc, http.Handler) {
	t.Helper()
	queueSvc := hmocks.NewMockQueueSvc(t)
	catalogSvc := hmocks.NewMockCatalogSvc(t)
	shopSvc := hmocks.NewMockShopSvc(t)

	h := NewHandler(queueSvc, catalogSvc, shopSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/shops", h.ListShops)
		api.GET("/shops/:id", h.GetShop)
		api.POST("/shops", h.CreateShop)
		api.PUT("/shops/:id", h.UpdateShop)
		api.GET("/services", h.ListServices)
		api.POST("/shops/:id/queue", h.JoinQueue)
		api.GET("/shops/:id/queue", h.GetQueue)
		api.POST("/shops/:id/queue/:entry_id/advance", h.AdvanceEntry)
		api.POST("/shops/:id/queue/:entry_id/cancel", h.CancelEntry)
	}

	return queueSvc, catalogSvc, shopSvc, r
}

func testEntry(shopID string) *domain.QueueEntry {
	return &domain.QueueEntry{
		ID:              uuid.New().String(),
		ShopID:          shopID,
		CustomerID:      uuid.New().String(),
		ServiceID:       uuid.New().String(),
		DurationMinutes: 30,
		Position:        1,
		Status:          domain.StatusWaiting,
		JoinedAt:        time.Now(),
	}
}

// --- Queue ---

func TestHandler_JoinQueue_Success(t *testing.T) {
	queueSvc, _, _, r := setupRouter(t)

	shopID := uuid.New().String()
	entry := testEntry(shopID)

	queueSvc.EXPECT().Join(mock.Anything, shopID, entry.CustomerID, entry.ServiceID).Return(entry, nil)

	body, _ := json.Marshal(dto.JoinQueueRequest{
		CustomerID: entry.CustomerID,
		ServiceID:  entry.ServiceID,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/"+shopID+"/queue", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.QueueEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, entry.ID, resp.ID)
	assert.Equal(t, int64(1), resp.Position)
	assert.Equal(t, "waiting", resp.Status)
}

func TestHandler_JoinQueue_InvalidShopID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"customer_id":"` + uuid.New().String() + `","service_id":"` + uuid.New().String() + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/not-a-uuid/queue", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_JoinQueue_BadBody(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"customer_id":"not-a-uuid"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/"+uuid.New().String()+"/queue", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_JoinQueue_Conflict_ReturnsExistingEntry(t *testing.T) {
	queueSvc, _, _, r := setupRouter(t)

	shopID := uuid.New().String()
	existing := testEntry(shopID)

	queueSvc.EXPECT().Join(mock.Anything, shopID, mock.Anything, mock.Anything).
		Return(existing, domain.ErrActiveEntryExists)

	body, _ := json.Marshal(dto.JoinQueueRequest{
		CustomerID: existing.CustomerID,
		ServiceID:  existing.ServiceID,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/"+shopID+"/queue", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ConflictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, existing.ID, resp.Entry.ID)
	assert.NotEmpty(t, resp.Error)
}

func TestHandler_JoinQueue_ShopNotFound(t *testing.T) {
	queueSvc, _, _, r := setupRouter(t)

	shopID := uuid.New().String()
	queueSvc.EXPECT().Join(mock.Anything, shopID, mock.Anything, mock.Anything).
		Return(nil, domain.ErrShopNotFound)

	body, _ := json.Marshal(dto.JoinQueueRequest{
		CustomerID: uuid.New().String(),
		ServiceID:  uuid.New().String(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/"+shopID+"/queue", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetQueue_Success(t *testing.T) {
	queueSvc, _, _, r := setupRouter(t)

	shopID := uuid.New().String()
	entry := testEntry(shopID)
	view := &domain.QueueView{
		ShopID:             shopID,
		Version:            3,
		AverageWaitMinutes: 30,
		Entries: []domain.QueueEntryView{
			{QueueEntry: *entry, WaitMinutes: 0},
		},
	}

	queueSvc.EXPECT().GetQueue(mock.Anything, shopID).Return(view, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shops/"+shopID+"/queue", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QueueViewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Version)
	assert.Equal(t, 30, resp.AverageWaitMinutes)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, entry.ID, resp.Entries[0].ID)
}

func TestHandler_AdvanceEntry_Success(t *testing.T) {
	queueSvc, _, _, r := setupRouter(t)

	shopID := uuid.New().String()
	entry := testEntry(shopID)
	entry.Status = domain.StatusInProgress

	queueSvc.EXPECT().Advance(mock.Anything, shopID, entry.ID).Return(entry, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/"+shopID+"/queue/"+entry.ID+"/advance", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QueueEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "in_progress", resp.Status)
}

func TestHandler_AdvanceEntry_InvalidTransition(t *testing.T) {
	queueSvc, _, _, r := setupRouter(t)

	shopID := uuid.New().String()
	entryID := uuid.New().String()

	queueSvc.EXPECT().Advance(mock.Anything, shopID, entryID).
		Return(nil, domain.ErrInvalidTransition)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/"+shopID+"/queue/"+entryID+"/advance", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AdvanceEntry_ShopBusy(t *testing.T) {
	queueSvc, _, _, r := setupRouter(t)

	shopID := uuid.New().String()
	entryID := uuid.New().String()

	queueSvc.EXPECT().Advance(mock.Anything, shopID, entryID).
		Return(nil, domain.ErrShopBusy)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/"+shopID+"/queue/"+entryID+"/advance", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AdvanceEntry_NotFound(t *testing.T) {
	queueSvc, _, _, r := setupRouter(t)

	shopID := uuid.New().String()
	entryID := uuid.New().String()

	queueSvc.EXPECT().Advance(mock.Anything, shopID, entryID).
		Return(nil, domain.ErrEntryNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/"+shopID+"/queue/"+entryID+"/advance", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelEntry_Success(t *testing.T) {
	queueSvc, _, _, r := setupRouter(t)

	shopID := uuid.New().String()
	entry := testEntry(shopID)
	entry.Status = domain.StatusCancelled

	queueSvc.EXPECT().Cancel(mock.Anything, shopID, entry.ID, domain.ActorOwner).Return(entry, nil)

	body := []byte(`{"actor":"owner"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/"+shopID+"/queue/"+entry.ID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QueueEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandler_CancelEntry_DefaultsToCustomer(t *testing.T) {
	queueSvc, _, _, r := setupRouter(t)

	shopID := uuid.New().String()
	entry := testEntry(shopID)
	entry.Status = domain.StatusCancelled

	queueSvc.EXPECT().Cancel(mock.Anything, shopID, entry.ID, domain.ActorCustomer).Return(entry, nil)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/"+shopID+"/queue/"+entry.ID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelEntry_Forbidden(t *testing.T) {
	queueSvc, _, _, r := setupRouter(t)

	shopID := uuid.New().String()
	entryID := uuid.New().String()

	queueSvc.EXPECT().Cancel(mock.Anything, shopID, entryID, domain.ActorCustomer).
		Return(nil, domain.ErrCancelNotPermitted)

	body := []byte(`{"actor":"customer"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/"+shopID+"/queue/"+entryID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Catalog ---

func TestHandler_ListShops_Success(t *testing.T) {
	_, catalogSvc, _, r := setupRouter(t)

	summaries := []domain.ShopSummary{
		{ShopID: uuid.New().String(), Name: "Fast Cuts", QueueLength: 1, Rating: 4.5, IsAvailable: true},
		{ShopID: uuid.New().String(), Name: "Slow Cuts", QueueLength: 7, Rating: 4.0, IsAvailable: false},
	}

	catalogSvc.EXPECT().List(mock.Anything, mock.Anything).Return(summaries, 1, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shops", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Shops, 2)
	assert.Equal(t, "Fast Cuts", resp.Shops[0].Name)
	assert.True(t, resp.Shops[0].IsAvailable)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestHandler_ListShops_PassesQueryParams(t *testing.T) {
	_, catalogSvc, _, r := setupRouter(t)

	catalogSvc.EXPECT().List(mock.Anything, mock.MatchedBy(func(p domain.CatalogParams) bool {
		return p.MinRating == 4.0 &&
			p.MaxPrice != nil && *p.MaxPrice == 50 &&
			p.Search == "cuts" &&
			p.SortBy == domain.SortByRating &&
			p.SortOrder == domain.SortDesc &&
			p.Page == 2 &&
			p.PageSize == 5
	})).Return([]domain.ShopSummary{}, 2, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/shops?min_rating=4.0&max_price=50&search=cuts&sort_by=rating&sort_order=desc&page=2&page_size=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListShops_AbsentPageDefaultsToFirst(t *testing.T) {
	_, catalogSvc, _, r := setupRouter(t)

	catalogSvc.EXPECT().List(mock.Anything, mock.MatchedBy(func(p domain.CatalogParams) bool {
		return p.Page == 1
	})).Return([]domain.ShopSummary{}, 0, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shops", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListShops_PageZeroRejected(t *testing.T) {
	_, catalogSvc, _, r := setupRouter(t)

	catalogSvc.EXPECT().List(mock.Anything, mock.MatchedBy(func(p domain.CatalogParams) bool {
		return p.Page == 0
	})).Return(nil, 0, domain.ErrInvalidPage)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shops?page=0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListShops_InvalidQuery(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shops?min_rating=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListShops_InvalidPage(t *testing.T) {
	_, catalogSvc, _, r := setupRouter(t)

	catalogSvc.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, 0, domain.ErrInvalidPage)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shops?page=99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Shops ---

func TestHandler_CreateShop_Success(t *testing.T) {
	_, _, shopSvc, r := setupRouter(t)

	serviceID := uuid.New().String()
	shop := &domain.Shop{
		ID:      uuid.New().String(),
		Name:    "Fast Cuts",
		Address: "1 Main St",
		Chairs:  2,
		Services: []domain.ServiceOffering{
			{ServiceID: serviceID, Name: "Haircut", Price: 25, DurationMinutes: 30},
		},
		CreatedAt: time.Now(),
	}

	shopSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(shop, nil)

	body, _ := json.Marshal(dto.CreateShopRequest{
		Name:    "Fast Cuts",
		Address: "1 Main St",
		Chairs:  2,
		Services: []dto.OfferingRequest{
			{ServiceID: serviceID, Price: 25, DurationMinutes: 30},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ShopResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Fast Cuts", resp.Name)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, serviceID, resp.Services[0].ServiceID)
}

func TestHandler_CreateShop_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetShop_NotFound(t *testing.T) {
	_, _, shopSvc, r := setupRouter(t)

	shopID := uuid.New().String()
	shopSvc.EXPECT().GetByID(mock.Anything, shopID).Return(nil, domain.ErrShopNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shops/"+shopID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateShop_Success(t *testing.T) {
	_, _, shopSvc, r := setupRouter(t)

	shopID := uuid.New().String()
	shop := &domain.Shop{ID: shopID, Name: "Renamed", Address: "1 Main St", Chairs: 1, CreatedAt: time.Now()}

	shopSvc.EXPECT().Update(mock.Anything, shopID, mock.Anything).Return(shop, nil)

	body := []byte(`{"name":"Renamed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/shops/"+shopID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ShopResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Renamed", resp.Name)
}

// --- Services ---

func TestHandler_ListServices_Success(t *testing.T) {
	_, _, shopSvc, r := setupRouter(t)

	services := []*domain.Service{
		{ID: uuid.New().String(), Name: "Haircut", DefaultDuration: 30},
		{ID: uuid.New().String(), Name: "Beard Trim", DefaultDuration: 15},
	}

	shopSvc.EXPECT().ListServices(mock.Anything).Return(services, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ServiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Haircut", resp[0].Name)
}
