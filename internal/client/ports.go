package client

import (
	"context"

	"radagast/internal/domain"
)

// Facade is the published surface of the client registry. Other modules
// consume clients only through it.
type Facade interface {
	Add(ctx context.Context, client *domain.Client) error
	Find(ctx context.Context, id string) (*domain.Client, error)
}

type Repository interface {
	Add(ctx context.Context, client *domain.Client) error
	FindByID(ctx context.Context, id string) (*domain.Client, error)
}
