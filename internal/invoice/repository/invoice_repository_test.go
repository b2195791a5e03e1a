package repository

import (
	"context"
	"testing"

	"radagast/internal/domain"
	apperrors "radagast/internal/errors"
	"radagast/internal/testutil"
)

func TestInvoiceRepository_SaveAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLInvoiceRepository(db)
	ctx := context.Background()

	invoice, err := domain.NewInvoice("Client 1", "123456789",
		domain.Address{
			Street:     "Street 1",
			Number:     "123",
			Complement: "Apt 1",
			City:       "City 1",
			State:      "State 1",
			ZipCode:    "12345",
		},
		[]domain.InvoiceItem{
			{ID: "p1", Name: "Product 1", Price: 100},
			{ID: "p2", Name: "Product 2", Price: 200},
		},
	)
	if err != nil {
		t.Fatalf("creating invoice: %v", err)
	}

	if err := repo.Save(ctx, invoice); err != nil {
		t.Fatalf("saving invoice: %v", err)
	}

	found, err := repo.FindByID(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("finding invoice: %v", err)
	}

	if found.Name != "Client 1" || found.Document != "123456789" {
		t.Errorf("invoice header not reconstructed: %+v", found)
	}
	if found.Address.Street != "Street 1" {
		t.Errorf("address not reconstructed: %+v", found.Address)
	}
	if len(found.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(found.Items))
	}
	if found.Total() != 300 {
		t.Errorf("expected total 300, got %f", found.Total())
	}
}

func TestInvoiceRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLInvoiceRepository(db)

	_, err := repo.FindByID(context.Background(), "missing")

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}
