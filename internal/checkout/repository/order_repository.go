package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"radagast/internal/domain"
	"radagast/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// AddOrder writes one orders row holding the client snapshot, status and
// total, plus one order_products row per line. Line position is stored
// so the read path can rebuild the request order.
func (r *MySQLOrderRepository) AddOrder(ctx context.Context, order *domain.Order) error {
	now := time.Now().UTC()

	query := `
		INSERT INTO orders (id, client_id, client_name, client_email, client_document,
		                    street, number, complement, city, state, zip_code,
		                    status, total, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		order.ID, order.Client.ID, order.Client.Name, order.Client.Email, order.Client.Document,
		order.Client.Address.Street, order.Client.Address.Number, order.Client.Address.Complement,
		order.Client.Address.City, order.Client.Address.State, order.Client.Address.ZipCode,
		order.Status, order.Total, now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	lineQuery := `
		INSERT INTO order_products (id, order_id, product_id, name, description, sales_price, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for i, product := range order.Products {
		_, err := r.db.ExecContext(ctx, lineQuery,
			uuid.New().String(), order.ID, product.ID,
			product.Name, product.Description, product.SalesPrice, i,
		)
		if err != nil {
			return fmt.Errorf("inserting order product: %w", err)
		}
	}

	return nil
}

func (r *MySQLOrderRepository) FindOrder(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, client_id, client_name, client_email, client_document,
		       street, number, complement, city, state, zip_code,
		       status, total
		FROM orders
		WHERE id = ?
	`

	var (
		orderID string
		client  domain.Client
		status  string
		total   float64
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&orderID, &client.ID, &client.Name, &client.Email, &client.Document,
		&client.Address.Street, &client.Address.Number, &client.Address.Complement,
		&client.Address.City, &client.Address.State, &client.Address.ZipCode,
		&status, &total,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	lineQuery := `
		SELECT product_id, name, description, sales_price
		FROM order_products
		WHERE order_id = ?
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, lineQuery, id)
	if err != nil {
		return nil, fmt.Errorf("querying order products: %w", err)
	}
	defer rows.Close()

	var products []domain.CatalogProduct
	for rows.Next() {
		var product domain.CatalogProduct
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.SalesPrice); err != nil {
			return nil, fmt.Errorf("scanning order product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order products: %w", err)
	}

	return domain.RestoreOrder(orderID, &client, products, status, total), nil
}
