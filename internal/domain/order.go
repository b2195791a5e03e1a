package domain

import (
	"github.com/google/uuid"

	apperrors "radagast/internal/errors"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusApproved = "approved"
)

// Order is the aggregate produced by order placement. Total is fixed at
// construction as the sum of line prices; lines and total have no
// mutators afterwards.
type Order struct {
	ID       string
	Client   *Client
	Products []CatalogProduct
	Status   string
	Total    float64
}

func NewOrder(client *Client, products []CatalogProduct) (*Order, error) {
	if client == nil {
		return nil, apperrors.NewValidationError("order requires a client")
	}
	if len(products) == 0 {
		return nil, apperrors.NewValidationError("order requires at least one product")
	}

	total := 0.0
	for _, p := range products {
		total += p.SalesPrice
	}

	return &Order{
		ID:       uuid.New().String(),
		Client:   client,
		Products: products,
		Status:   OrderStatusPending,
		Total:    total,
	}, nil
}

// RestoreOrder rebuilds a persisted aggregate without re-generating its
// id. Used by the repository on the read path.
func RestoreOrder(id string, client *Client, products []CatalogProduct, status string, total float64) *Order {
	return &Order{
		ID:       id,
		Client:   client,
		Products: products,
		Status:   status,
		Total:    total,
	}
}

// Approve marks the order approved. This is the only status transition
// that exists; it happens before persistence, never after.
func (o *Order) Approve() {
	o.Status = OrderStatusApproved
}
