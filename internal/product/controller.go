package product

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"radagast/internal/domain"
	"radagast/internal/dto"
	apperrors "radagast/internal/errors"
)

type Controller struct {
	facade Facade
	logger *zap.Logger
}

func NewController(facade Facade, logger *zap.Logger) *Controller {
	return &Controller{
		facade: facade,
		logger: logger,
	}
}

func (c *Controller) HandleAddProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateAddProductRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	product := &domain.Product{
		ID:            req.ID,
		Name:          *req.Name,
		Description:   *req.Description,
		PurchasePrice: *req.PurchasePrice,
		Stock:         *req.Stock,
	}

	if err := c.facade.AddProduct(r.Context(), product); err != nil {
		c.logger.Error("add product failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Every field must be present in the payload; values themselves are not
// constrained, so empty names and negative prices or stock pass through.
func (c *Controller) validateAddProductRequest(req dto.AddProductRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}
	if req.Description == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "description",
			Message: "description is required",
		})
	}
	if req.PurchasePrice == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "purchasePrice",
			Message: "purchasePrice is required",
		})
	}
	if req.Stock == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "stock",
			Message: "stock is required",
		})
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

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
