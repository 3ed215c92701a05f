package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"framerly/internal/domain"
	"framerly/internal/dto"
	apperrors "framerly/internal/errors"
	"framerly/internal/order/repository"
)

const (
	maxQuoteLen   = 500
	minQuoteLen   = 10
	maxAuthorLen  = 100
	minAuthorLen  = 2
	maxMessageLen = 1000
	maxPhoneLen   = 20
	minPhoneLen   = 10
	maxEmailLen   = 50
)

var pinCodeRe = regexp.MustCompile(`^\d{6}$`)

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (*domain.Order, error)
	List(ctx context.Context, filter repository.OrderFilter, page, limit int, sortDir string) ([]domain.Order, int64, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
}

type OrderController struct {
	repo   OrderRepository
	logger *zap.Logger
}

func NewOrderController(repo OrderRepository, logger *zap.Logger) *OrderController {
	return &OrderController{
		repo:   repo,
		logger: logger,
	}
}

// Create handles POST /orders, the public submission endpoint. Whatever the
// client sends, the stored order starts pending.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateCreateOrderRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		logger.Warn("order validation failed", zap.Int("detailCount", len(ve.Details)))
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	created, err := c.repo.Create(r.Context(), req.ToOrder())
	if err != nil {
		logger.Error("creating order", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.MessageResponse{Message: "failed to create order"})
		return
	}

	logger.Info("order created",
		zap.String("orderId", created.ID),
		zap.Int("frameId", created.FrameID),
		zap.String("mode", created.Mode),
	)

	c.writeJSON(w, http.StatusCreated, dto.CreateOrderResponse{
		Message: "Order created successfully",
		ID:      created.ID,
	})
}

// List handles GET /orders. An unknown status value is silently ignored and
// yields the unfiltered view; page and limit fall back to 1 and 5.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		limit = repository.DefaultLimit
	}

	sortDir := q.Get("sort")
	if sortDir != domain.SortAsc {
		sortDir = domain.SortDesc
	}

	filter := repository.OrderFilter{Status: q.Get("status")}

	orders, total, err := c.repo.List(r.Context(), filter, page, limit, sortDir)
	if err != nil {
		logger.Error("listing orders", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.MessageResponse{Message: "failed to list orders"})
		return
	}

	c.writeJSON(w, http.StatusOK, dto.ListOrdersResponse{
		Orders: orders,
		Total:  total,
		Page:   page,
		Limit:  limit,
	})
}

// UpdateStatus handles PATCH /orders/{id}, the single admin triage operation.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id := chi.URLParam(r, "id")

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "request body must be valid JSON"})
		return
	}

	updated, err := c.repo.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if _, ok := apperrors.IsInvalidArgumentError(err); ok {
			c.writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Invalid status"})
			return
		}
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "Order not found"})
			return
		}
		logger.Error("updating order status", zap.String("orderId", id), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.MessageResponse{Message: "failed to update order"})
		return
	}

	logger.Info("order status updated",
		zap.String("orderId", updated.ID),
		zap.String("status", updated.Status),
	)

	c.writeJSON(w, http.StatusOK, updated)
}

func validateCreateOrderRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	add := func(field, message string) {
		details = append(details, apperrors.ValidationDetail{Field: field, Message: message})
	}

	if req.FrameID <= 0 {
		add("frameId", "frameId must be a positive integer")
	}
	if req.FrameName == "" {
		add("frameName", "frameName is required")
	}
	if req.FramePrice < 0 {
		add("framePrice", "framePrice must be non-negative")
	}

	if !domain.IsValidMode(req.Mode) {
		add("mode", "mode must be either quote or photo")
	}
	if !domain.IsValidPhotoOption(req.PhotoOption) {
		add("photoOption", "photoOption must be one of none, upload, suggest")
	}

	switch req.Mode {
	case domain.ModeQuote:
		if len(req.Quote) < minQuoteLen {
			add("quote", "quote must be at least 10 characters")
		} else if len(req.Quote) > maxQuoteLen {
			add("quote", "quote must not exceed 500 characters")
		}
		if len(req.Author) < minAuthorLen {
			add("author", "author name is required")
		} else if len(req.Author) > maxAuthorLen {
			add("author", "author must not exceed 100 characters")
		}
	case domain.ModePhoto:
		if req.PhotoURL == "" {
			add("photoUrl", "a photo is required for photo-only mode")
		}
	}

	if len(req.CustomMessage) > maxMessageLen {
		add("customMessage", "customMessage must not exceed 1000 characters")
	}
	if len(req.Size) < 3 {
		add("size", "size is required (e.g. 8x10 inches)")
	}

	if len(req.Country) < 2 {
		add("country", "country is required")
	}
	if len(req.State) < 2 {
		add("state", "state is required")
	}
	if len(req.District) < 2 {
		add("district", "district is required")
	}
	if !pinCodeRe.MatchString(req.PinCode) {
		add("pinCode", "a valid 6-digit PIN code is required")
	}
	if len(req.VillageOrCity) < 2 {
		add("villageOrCity", "city or village is required")
	}

	if len(req.Phone) < minPhoneLen {
		add("phone", "a valid phone number is required")
	} else if len(req.Phone) > maxPhoneLen {
		add("phone", "phone number is too long")
	}

	if len(req.Email) > maxEmailLen {
		add("email", "email address is too long")
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		add("email", "a valid email address is required")
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	response := validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}

	c.writeJSON(w, http.StatusBadRequest, response)
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
