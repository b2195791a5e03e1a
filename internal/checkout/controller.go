package checkout

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"radagast/internal/dto"
	apperrors "radagast/internal/errors"
)

type PlaceOrder interface {
	PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*dto.PlaceOrderResponse, error)
}

type Controller struct {
	useCase PlaceOrder
	logger  *zap.Logger
}

func NewController(useCase PlaceOrder, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "request body must be valid JSON",
		})
		return
	}

	result, err := c.useCase.PlaceOrder(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, result)
}

func (c *Controller) handleUseCaseError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	if _, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	logger.Error("place order failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
