package product

import (
	"context"

	"radagast/internal/domain"
	"radagast/internal/dto"
)

// Facade is the published surface of product administration. Checkout
// uses CheckStock only; AddProduct serves the registration endpoint.
type Facade interface {
	AddProduct(ctx context.Context, product *domain.Product) error
	CheckStock(ctx context.Context, productID string) (*dto.CheckStockResponse, error)
}

type Repository interface {
	Add(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}
