package repository

import (
	"context"
	"testing"
	"time"

	"radagast/internal/domain"
	apperrors "radagast/internal/errors"
	"radagast/internal/testutil"
)

func TestProductRepository_AddAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLProductRepository(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	product := &domain.Product{
		ID:            "p1",
		Name:          "Product 1",
		Description:   "Product 1 description",
		PurchasePrice: 100,
		Stock:         10,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := repo.Add(ctx, product); err != nil {
		t.Fatalf("adding product: %v", err)
	}

	found, err := repo.FindByID(ctx, "p1")
	if err != nil {
		t.Fatalf("finding product: %v", err)
	}

	if found.Name != "Product 1" || found.PurchasePrice != 100 || found.Stock != 10 {
		t.Errorf("product not reconstructed: %+v", found)
	}
}

func TestProductRepository_StoresNegativeValues(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLProductRepository(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	product := &domain.Product{
		ID:            "p-neg",
		Name:          "Product",
		Description:   "Negative values are stored as given",
		PurchasePrice: -100,
		Stock:         -10,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := repo.Add(ctx, product); err != nil {
		t.Fatalf("adding product: %v", err)
	}

	found, err := repo.FindByID(ctx, "p-neg")
	if err != nil {
		t.Fatalf("finding product: %v", err)
	}
	if found.PurchasePrice != -100 || found.Stock != -10 {
		t.Errorf("expected negative values preserved, got %+v", found)
	}
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLProductRepository(db)

	_, err := repo.FindByID(context.Background(), "missing")

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}
