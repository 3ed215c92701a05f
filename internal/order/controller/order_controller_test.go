package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"framerly/internal/domain"
	"framerly/internal/dto"
	apperrors "framerly/internal/errors"
	"framerly/internal/order/repository"
)

// Mock implementation

type mockOrderRepository struct {
	CreateFunc       func(ctx context.Context, order domain.Order) (*domain.Order, error)
	ListFunc         func(ctx context.Context, filter repository.OrderFilter, page, limit int, sortDir string) ([]domain.Order, int64, error)
	UpdateStatusFunc func(ctx context.Context, id, status string) (*domain.Order, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, order domain.Order) (*domain.Order, error) {
	return m.CreateFunc(ctx, order)
}

func (m *mockOrderRepository) List(ctx context.Context, filter repository.OrderFilter, page, limit int, sortDir string) ([]domain.Order, int64, error) {
	return m.ListFunc(ctx, filter, page, limit, sortDir)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	return m.UpdateStatusFunc(ctx, id, status)
}

func newTestRouter(repo OrderRepository) http.Handler {
	ctrl := NewOrderController(repo, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/orders", ctrl.Create)
	r.Get("/orders", ctrl.List)
	r.Patch("/orders/{id}", ctrl.UpdateStatus)
	return r
}

func validCreateRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		FrameID:       1,
		FrameName:     "Classic Oak",
		FramePrice:    250,
		Mode:          domain.ModeQuote,
		Quote:         "Stay hungry, stay foolish.",
		Author:        "Steve Jobs",
		PhotoOption:   domain.PhotoOptionNone,
		Size:          "8x10 inches",
		Country:       "India",
		State:         "WB",
		District:      "Kolkata",
		PinCode:       "700001",
		VillageOrCity: "Kolkata",
		Phone:         "9999999999",
		Email:         "a@b.com",
	}
}

func postOrder(t *testing.T, handler http.Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// Create

func TestCreate_ValidQuoteOrder(t *testing.T) {
	var stored domain.Order
	repo := &mockOrderRepository{
		CreateFunc: func(ctx context.Context, order domain.Order) (*domain.Order, error) {
			order.ID = "65a0000000000000000000aa"
			order.Status = domain.OrderStatusPending
			order.CreatedAt = time.Now().UTC()
			order.UpdatedAt = order.CreatedAt
			stored = order
			return &order, nil
		},
	}
	handler := newTestRouter(repo)

	w := postOrder(t, handler, validCreateRequest())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Classic Oak", stored.FrameName)
	assert.Equal(t, "Stay hungry, stay foolish.", stored.Quote)

	var resp dto.CreateOrderResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Order created successfully", resp.Message)
	assert.Equal(t, "65a0000000000000000000aa", resp.ID)
}

func TestCreate_ClientSuppliedStatusIsIgnored(t *testing.T) {
	var stored domain.Order
	repo := &mockOrderRepository{
		CreateFunc: func(ctx context.Context, order domain.Order) (*domain.Order, error) {
			order.Status = domain.OrderStatusPending
			stored = order
			return &order, nil
		},
	}
	handler := newTestRouter(repo)

	raw, err := json.Marshal(validCreateRequest())
	require.NoError(t, err)

	// Smuggle a status field into the body; the input type has no status
	// field, so it must never reach the repository.
	body := strings.Replace(string(raw), "{", `{"status":"solved",`, 1)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, domain.OrderStatusPending, stored.Status)
}

func TestCreate_QuoteMode_MissingQuote(t *testing.T) {
	repo := &mockOrderRepository{}
	handler := newTestRouter(repo)

	req := validCreateRequest()
	req.Quote = ""

	w := postOrder(t, handler, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "quote")
}

func TestCreate_QuoteMode_ShortQuote(t *testing.T) {
	repo := &mockOrderRepository{}
	handler := newTestRouter(repo)

	req := validCreateRequest()
	req.Quote = "too short"

	w := postOrder(t, handler, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreate_QuoteMode_MissingAuthor(t *testing.T) {
	repo := &mockOrderRepository{}
	handler := newTestRouter(repo)

	req := validCreateRequest()
	req.Author = ""

	w := postOrder(t, handler, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "author")
}

func TestCreate_PhotoMode_MissingPhotoURL(t *testing.T) {
	repo := &mockOrderRepository{}
	handler := newTestRouter(repo)

	req := validCreateRequest()
	req.Mode = domain.ModePhoto
	req.Quote = ""
	req.Author = ""

	w := postOrder(t, handler, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "photoUrl")
}

func TestCreate_PhotoMode_WithPhotoURL(t *testing.T) {
	repo := &mockOrderRepository{
		CreateFunc: func(ctx context.Context, order domain.Order) (*domain.Order, error) {
			return &order, nil
		},
	}
	handler := newTestRouter(repo)

	req := validCreateRequest()
	req.Mode = domain.ModePhoto
	req.Quote = ""
	req.Author = ""
	req.PhotoURL = "https://cdn.example.com/photo.jpg"

	w := postOrder(t, handler, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreate_InvalidShippingFields(t *testing.T) {
	repo := &mockOrderRepository{}
	handler := newTestRouter(repo)

	req := validCreateRequest()
	req.PinCode = "70001" // five digits
	req.Country = ""
	req.Email = "not-an-email"

	w := postOrder(t, handler, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string                       `json:"error"`
		Details []apperrors.ValidationDetail `json:"details"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error)

	fields := make(map[string]bool)
	for _, d := range resp.Details {
		fields[d.Field] = true
	}
	assert.True(t, fields["pinCode"])
	assert.True(t, fields["country"])
	assert.True(t, fields["email"])
}

func TestCreate_InvalidJSONBody(t *testing.T) {
	repo := &mockOrderRepository{}
	handler := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreate_StorageFailure(t *testing.T) {
	repo := &mockOrderRepository{
		CreateFunc: func(ctx context.Context, order domain.Order) (*domain.Order, error) {
			return nil, apperrors.NewStorageError("inserting order", context.DeadlineExceeded)
		},
	}
	handler := newTestRouter(repo)

	w := postOrder(t, handler, validCreateRequest())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// List

func TestList_DefaultsAndResponseShape(t *testing.T) {
	var gotPage, gotLimit int
	var gotSort string
	var gotFilter repository.OrderFilter

	repo := &mockOrderRepository{
		ListFunc: func(ctx context.Context, filter repository.OrderFilter, page, limit int, sortDir string) ([]domain.Order, int64, error) {
			gotFilter, gotPage, gotLimit, gotSort = filter, page, limit, sortDir
			return []domain.Order{{ID: "a"}, {ID: "b"}}, 7, nil
		},
	}
	handler := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, domain.SortDesc, gotSort)
	assert.Empty(t, gotFilter.Status)

	var resp dto.ListOrdersResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Orders, 2)
	assert.Equal(t, int64(7), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 5, resp.Limit)
}

func TestList_ExplicitParams(t *testing.T) {
	var gotPage, gotLimit int
	var gotSort string
	var gotFilter repository.OrderFilter

	repo := &mockOrderRepository{
		ListFunc: func(ctx context.Context, filter repository.OrderFilter, page, limit int, sortDir string) ([]domain.Order, int64, error) {
			gotFilter, gotPage, gotLimit, gotSort = filter, page, limit, sortDir
			return nil, 0, nil
		},
	}
	handler := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/orders?status=solved&page=3&limit=10&sort=asc", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "solved", gotFilter.Status)
	assert.Equal(t, 3, gotPage)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, domain.SortAsc, gotSort)
}

func TestList_BadParamsFallBackToDefaults(t *testing.T) {
	var gotPage, gotLimit int
	var gotSort string

	repo := &mockOrderRepository{
		ListFunc: func(ctx context.Context, filter repository.OrderFilter, page, limit int, sortDir string) ([]domain.Order, int64, error) {
			gotPage, gotLimit, gotSort = page, limit, sortDir
			return nil, 0, nil
		},
	}
	handler := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/orders?page=zero&limit=-4&sort=sideways", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, domain.SortDesc, gotSort)
}

func TestList_StorageFailure(t *testing.T) {
	repo := &mockOrderRepository{
		ListFunc: func(ctx context.Context, filter repository.OrderFilter, page, limit int, sortDir string) ([]domain.Order, int64, error) {
			return nil, 0, apperrors.NewStorageError("querying orders", nil)
		},
	}
	handler := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// UpdateStatus

func patchOrder(t *testing.T, handler http.Handler, id, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPatch, "/orders/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestUpdateStatus_Success(t *testing.T) {
	repo := &mockOrderRepository{
		UpdateStatusFunc: func(ctx context.Context, id, status string) (*domain.Order, error) {
			return &domain.Order{ID: id, Status: status}, nil
		},
	}
	handler := newTestRouter(repo)

	w := patchOrder(t, handler, "65a0000000000000000000aa", `{"status":"solved"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var updated domain.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
	assert.Equal(t, "65a0000000000000000000aa", updated.ID)
	assert.Equal(t, domain.OrderStatusSolved, updated.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &mockOrderRepository{
		UpdateStatusFunc: func(ctx context.Context, id, status string) (*domain.Order, error) {
			return nil, apperrors.NewInvalidArgumentError("invalid status: " + status)
		},
	}
	handler := newTestRouter(repo)

	w := patchOrder(t, handler, "65a0000000000000000000aa", `{"status":"shipped"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status")
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &mockOrderRepository{
		UpdateStatusFunc: func(ctx context.Context, id, status string) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found: " + id)
		},
	}
	handler := newTestRouter(repo)

	w := patchOrder(t, handler, "ffffffffffffffffffffffff", `{"status":"solved"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found")
}

func TestUpdateStatus_InvalidJSONBody(t *testing.T) {
	repo := &mockOrderRepository{}
	handler := newTestRouter(repo)

	w := patchOrder(t, handler, "65a0000000000000000000aa", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus_StorageFailure(t *testing.T) {
	repo := &mockOrderRepository{
		UpdateStatusFunc: func(ctx context.Context, id, status string) (*domain.Order, error) {
			return nil, apperrors.NewStorageError("updating order status", nil)
		},
	}
	handler := newTestRouter(repo)

	w := patchOrder(t, handler, "65a0000000000000000000aa", `{"status":"solved"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
