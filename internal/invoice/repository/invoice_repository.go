package repository

import (
	"context"
	"database/sql"
	"fmt"

	"radagast/internal/domain"
	"radagast/internal/errors"
)

type MySQLInvoiceRepository struct {
	db *sql.DB
}

func NewMySQLInvoiceRepository(db *sql.DB) *MySQLInvoiceRepository {
	return &MySQLInvoiceRepository{db: db}
}

// Save writes the invoice header and one row per item. Items carry the
// invoice id so the read path can rejoin them.
func (r *MySQLInvoiceRepository) Save(ctx context.Context, invoice *domain.Invoice) error {
	query := `
		INSERT INTO invoices (id, name, document, street, number, complement, city, state, zip_code, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		invoice.ID, invoice.Name, invoice.Document,
		invoice.Address.Street, invoice.Address.Number, invoice.Address.Complement,
		invoice.Address.City, invoice.Address.State, invoice.Address.ZipCode,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting invoice: %w", err)
	}

	itemQuery := `
		INSERT INTO invoice_items (id, invoice_id, name, price)
		VALUES (?, ?, ?, ?)
	`
	for _, item := range invoice.Items {
		if _, err := r.db.ExecContext(ctx, itemQuery, item.ID, invoice.ID, item.Name, item.Price); err != nil {
			return fmt.Errorf("inserting invoice item: %w", err)
		}
	}

	return nil
}

func (r *MySQLInvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `
		SELECT id, name, document, street, number, complement, city, state, zip_code, created_at, updated_at
		FROM invoices
		WHERE id = ?
	`

	var invoice domain.Invoice
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&invoice.ID, &invoice.Name, &invoice.Document,
		&invoice.Address.Street, &invoice.Address.Number, &invoice.Address.Complement,
		&invoice.Address.City, &invoice.Address.State, &invoice.Address.ZipCode,
		&invoice.CreatedAt, &invoice.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("invoice with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying invoice by id: %w", err)
	}

	itemQuery := `
		SELECT id, name, price
		FROM invoice_items
		WHERE invoice_id = ?
	`

	rows, err := r.db.QueryContext(ctx, itemQuery, id)
	if err != nil {
		return nil, fmt.Errorf("querying invoice items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.InvoiceItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			return nil, fmt.Errorf("scanning invoice item: %w", err)
		}
		invoice.Items = append(invoice.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice items: %w", err)
	}

	return &invoice, nil
}
