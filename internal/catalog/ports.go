package catalog

import (
	"context"

	"radagast/internal/domain"
)

// Facade is the read-only surface of the sales catalog.
type Facade interface {
	Find(ctx context.Context, id string) (*domain.CatalogProduct, error)
	FindAll(ctx context.Context) ([]domain.CatalogProduct, error)
}

type Repository interface {
	FindByID(ctx context.Context, id string) (*domain.CatalogProduct, error)
	FindAll(ctx context.Context) ([]domain.CatalogProduct, error)
}
