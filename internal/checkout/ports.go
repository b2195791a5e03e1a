package checkout

import (
	"context"

	"radagast/internal/domain"
	"radagast/internal/dto"
)

// Collaborator contracts consumed by order placement. Each names exactly
// the operations checkout needs; the owning modules satisfy them with
// their facades and tests substitute their own implementations.

type ClientFacade interface {
	Find(ctx context.Context, id string) (*domain.Client, error)
}

type ProductFacade interface {
	CheckStock(ctx context.Context, productID string) (*dto.CheckStockResponse, error)
}

type CatalogFacade interface {
	Find(ctx context.Context, id string) (*domain.CatalogProduct, error)
}

type PaymentFacade interface {
	Process(ctx context.Context, orderID string, amount float64) (*domain.Transaction, error)
}

type InvoiceFacade interface {
	Generate(ctx context.Context, req dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error)
}

// OrderRepository is the persistence gateway for placed orders. Orders
// are append-only; there is no update or delete.
type OrderRepository interface {
	AddOrder(ctx context.Context, order *domain.Order) error
	FindOrder(ctx context.Context, id string) (*domain.Order, error)
}
