package repository

import (
	"context"
	"database/sql"
	"fmt"

	"radagast/internal/domain"
	"radagast/internal/errors"
)

type MySQLCatalogRepository struct {
	db *sql.DB
}

func NewMySQLCatalogRepository(db *sql.DB) *MySQLCatalogRepository {
	return &MySQLCatalogRepository{db: db}
}

func (r *MySQLCatalogRepository) FindByID(ctx context.Context, id string) (*domain.CatalogProduct, error) {
	query := `
		SELECT id, name, description, sales_price
		FROM catalog_products
		WHERE id = ?
	`

	var product domain.CatalogProduct
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Description, &product.SalesPrice,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying catalog product by id: %w", err)
	}

	return &product, nil
}

func (r *MySQLCatalogRepository) FindAll(ctx context.Context) ([]domain.CatalogProduct, error) {
	query := `
		SELECT id, name, description, sales_price
		FROM catalog_products
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying catalog products: %w", err)
	}
	defer rows.Close()

	var products []domain.CatalogProduct
	for rows.Next() {
		var product domain.CatalogProduct
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.SalesPrice); err != nil {
			return nil, fmt.Errorf("scanning catalog product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog products: %w", err)
	}

	return products, nil
}
