package repository

import (
	"context"
	"testing"

	apperrors "radagast/internal/errors"
	"radagast/internal/testutil"
)

func TestCatalogRepository_FindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	_, err := db.Exec(
		`INSERT INTO catalog_products (id, name, description, sales_price) VALUES (?, ?, ?, ?)`,
		"p1", "Product 1", "Description 1", 100.0,
	)
	if err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}

	repo := NewMySQLCatalogRepository(db)

	product, err := repo.FindByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("finding catalog product: %v", err)
	}

	if product.Name != "Product 1" || product.SalesPrice != 100 {
		t.Errorf("catalog product not reconstructed: %+v", product)
	}
}

func TestCatalogRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLCatalogRepository(db)

	_, err := repo.FindByID(context.Background(), "missing")

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestCatalogRepository_FindAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	rows := [][]interface{}{
		{"p1", "Product 1", "Description 1", 100.0},
		{"p2", "Product 2", "Description 2", 200.0},
	}
	for _, row := range rows {
		_, err := db.Exec(
			`INSERT INTO catalog_products (id, name, description, sales_price) VALUES (?, ?, ?, ?)`,
			row...,
		)
		if err != nil {
			t.Fatalf("seeding catalog: %v", err)
		}
	}

	repo := NewMySQLCatalogRepository(db)

	products, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("finding catalog products: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected 2 products, got %d", len(products))
	}
}
