package catalog

import (
	"context"

	"radagast/internal/domain"
)

type facade struct {
	repo Repository
}

func NewFacade(repo Repository) Facade {
	return &facade{repo: repo}
}

func (f *facade) Find(ctx context.Context, id string) (*domain.CatalogProduct, error) {
	return f.repo.FindByID(ctx, id)
}

func (f *facade) FindAll(ctx context.Context) ([]domain.CatalogProduct, error) {
	return f.repo.FindAll(ctx)
}
