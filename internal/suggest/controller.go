package suggest

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"framerly/internal/dto"
	apperrors "framerly/internal/errors"
)

type Suggester interface {
	SuggestPhoto(ctx context.Context, quote string) (string, error)
}

type SuggestController struct {
	suggester Suggester
	logger    *zap.Logger
}

func NewSuggestController(suggester Suggester, logger *zap.Logger) *SuggestController {
	return &SuggestController{
		suggester: suggester,
		logger:    logger,
	}
}

type suggestionRequest struct {
	Quote string `json:"quote"`
}

type suggestionResponse struct {
	Description string `json:"description"`
}

// Suggest handles POST /suggestions. Upstream failures come back as a 502;
// the caller can simply try again.
func (c *SuggestController) Suggest(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "request body must be valid JSON"})
		return
	}

	description, err := c.suggester.SuggestPhoto(r.Context(), req.Quote)
	if err != nil {
		if _, ok := apperrors.IsInvalidArgumentError(err); ok {
			c.writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Quote cannot be empty"})
			return
		}
		c.logger.Error("photo suggestion failed", zap.Error(err))
		c.writeJSON(w, http.StatusBadGateway, dto.MessageResponse{Message: "Failed to get suggestion"})
		return
	}

	c.writeJSON(w, http.StatusOK, suggestionResponse{Description: description})
}

func (c *SuggestController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
