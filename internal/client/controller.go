package client

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

func (c *Controller) HandleAddClient(w http.ResponseWriter, r *http.Request) {
	var req dto.AddClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateAddClientRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	client := &domain.Client{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Document: req.Document,
		Address: domain.Address{
			Street:     req.Address.Street,
			Number:     req.Address.Number,
			Complement: req.Address.Complement,
			City:       req.Address.City,
			State:      req.Address.State,
			ZipCode:    req.Address.ZipCode,
		},
	}

	if err := c.facade.Add(r.Context(), client); err != nil {
		c.logger.Error("add client failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (c *Controller) validateAddClientRequest(req dto.AddClientRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}
	if req.Email == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "email",
			Message: "email is required",
		})
	}
	if req.Document == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "document",
			Message: "document is required",
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
