package client

import (
	"context"
	"time"

	"github.com/google/uuid"

	"radagast/internal/domain"
)

type facade struct {
	repo Repository
}

func NewFacade(repo Repository) Facade {
	return &facade{repo: repo}
}

func (f *facade) Add(ctx context.Context, client *domain.Client) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	return f.repo.Add(ctx, client)
}

func (f *facade) Find(ctx context.Context, id string) (*domain.Client, error) {
	return f.repo.FindByID(ctx, id)
}
