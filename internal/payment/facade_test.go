package payment

import (
	"context"
	"errors"
	"testing"

	"radagast/internal/domain"
)

type mockRepository struct {
	SaveFunc func(ctx context.Context, tx *domain.Transaction) error
}

func (m *mockRepository) Save(ctx context.Context, tx *domain.Transaction) error {
	return m.SaveFunc(ctx, tx)
}

func TestFacade_Process_ApprovesAmountAtOrAboveThreshold(t *testing.T) {
	var saved *domain.Transaction
	repo := &mockRepository{
		SaveFunc: func(ctx context.Context, tx *domain.Transaction) error {
			saved = tx
			return nil
		},
	}

	facade := NewFacade(repo)

	tx, err := facade.Process(context.Background(), "o1", 100)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tx.Status != domain.TransactionStatusApproved {
		t.Errorf("expected status approved, got %s", tx.Status)
	}
	if tx.OrderID != "o1" {
		t.Errorf("expected order id o1, got %s", tx.OrderID)
	}
	if saved == nil || saved.ID != tx.ID {
		t.Errorf("expected transaction to be persisted")
	}
}

func TestFacade_Process_DeclinesAmountBelowThreshold(t *testing.T) {
	var saved *domain.Transaction
	repo := &mockRepository{
		SaveFunc: func(ctx context.Context, tx *domain.Transaction) error {
			saved = tx
			return nil
		},
	}

	facade := NewFacade(repo)

	tx, err := facade.Process(context.Background(), "o1", 50)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tx.Status != domain.TransactionStatusDeclined {
		t.Errorf("expected status declined, got %s", tx.Status)
	}
	if saved == nil {
		t.Errorf("expected declined transaction to be persisted")
	}
}

func TestFacade_Process_PropagatesStorageError(t *testing.T) {
	storageErr := errors.New("connection reset")
	repo := &mockRepository{
		SaveFunc: func(ctx context.Context, tx *domain.Transaction) error {
			return storageErr
		},
	}

	facade := NewFacade(repo)

	_, err := facade.Process(context.Background(), "o1", 100)

	if !errors.Is(err, storageErr) {
		t.Errorf("expected storage error to propagate unchanged, got %v", err)
	}
}
