package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "radagast/internal/errors"
)

type InvoiceItem struct {
	ID    string
	Name  string
	Price float64
}

type Invoice struct {
	ID        string
	Name      string
	Document  string
	Address   Address
	Items     []InvoiceItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewInvoice(name, document string, address Address, items []InvoiceItem) (*Invoice, error) {
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("invoice requires at least one item")
	}

	now := time.Now().UTC()
	return &Invoice{
		ID:        uuid.New().String(),
		Name:      name,
		Document:  document,
		Address:   address,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (i *Invoice) Total() float64 {
	total := 0.0
	for _, item := range i.Items {
		total += item.Price
	}
	return total
}
