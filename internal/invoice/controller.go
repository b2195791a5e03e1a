package invoice

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

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

func (c *Controller) HandleFindInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := c.facade.Find(r.Context(), id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		c.logger.Error("find invoice failed", zap.String("invoiceId", id), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	c.writeJSON(w, http.StatusOK, result)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
