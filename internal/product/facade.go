package product

import (
	"context"
	"time"

	"github.com/google/uuid"

	"radagast/internal/domain"
	"radagast/internal/dto"
)

type facade struct {
	repo Repository
}

func NewFacade(repo Repository) Facade {
	return &facade{repo: repo}
}

// AddProduct stores the product as given. Negative prices and stock are
// accepted; the stock rule is applied at check time, not at write time.
func (f *facade) AddProduct(ctx context.Context, product *domain.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	return f.repo.Add(ctx, product)
}

func (f *facade) CheckStock(ctx context.Context, productID string) (*dto.CheckStockResponse, error) {
	product, err := f.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &dto.CheckStockResponse{
		ProductID: product.ID,
		Stock:     product.Stock,
	}, nil
}
