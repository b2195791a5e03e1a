package client

import (
	"context"
	"testing"

	"radagast/internal/domain"
	apperrors "radagast/internal/errors"
)

type mockRepository struct {
	AddFunc      func(ctx context.Context, client *domain.Client) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.Client, error)
}

func (m *mockRepository) Add(ctx context.Context, client *domain.Client) error {
	return m.AddFunc(ctx, client)
}

func (m *mockRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	return m.FindByIDFunc(ctx, id)
}

func TestFacade_Add_GeneratesIDWhenMissing(t *testing.T) {
	var stored *domain.Client
	repo := &mockRepository{
		AddFunc: func(ctx context.Context, client *domain.Client) error {
			stored = client
			return nil
		},
	}

	facade := NewFacade(repo)

	err := facade.Add(context.Background(), &domain.Client{
		Name:     "Client 1",
		Email:    "client@test.com",
		Document: "123456789",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stored.ID == "" {
		t.Errorf("expected generated id, got empty string")
	}
	if stored.CreatedAt.IsZero() || stored.UpdatedAt.IsZero() {
		t.Errorf("expected timestamps to be set")
	}
}

func TestFacade_Add_KeepsProvidedID(t *testing.T) {
	var stored *domain.Client
	repo := &mockRepository{
		AddFunc: func(ctx context.Context, client *domain.Client) error {
			stored = client
			return nil
		},
	}

	facade := NewFacade(repo)

	err := facade.Add(context.Background(), &domain.Client{ID: "c1", Name: "Client 1"})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stored.ID != "c1" {
		t.Errorf("expected id c1, got %s", stored.ID)
	}
}

func TestFacade_Find_PropagatesNotFound(t *testing.T) {
	repo := &mockRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Client, error) {
			return nil, apperrors.NewNotFoundError("client not found")
		},
	}

	facade := NewFacade(repo)

	_, err := facade.Find(context.Background(), "missing")

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}
