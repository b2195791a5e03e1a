package repository

import (
	"context"
	"database/sql"
	"fmt"

	"radagast/internal/domain"
	"radagast/internal/errors"
)

type MySQLClientRepository struct {
	db *sql.DB
}

func NewMySQLClientRepository(db *sql.DB) *MySQLClientRepository {
	return &MySQLClientRepository{db: db}
}

func (r *MySQLClientRepository) Add(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, name, email, document, street, number, complement, city, state, zip_code, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		client.ID, client.Name, client.Email, client.Document,
		client.Address.Street, client.Address.Number, client.Address.Complement,
		client.Address.City, client.Address.State, client.Address.ZipCode,
		client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}

	return nil
}

func (r *MySQLClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `
		SELECT id, name, email, document, street, number, complement, city, state, zip_code, created_at, updated_at
		FROM clients
		WHERE id = ?
	`

	var client domain.Client
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&client.ID, &client.Name, &client.Email, &client.Document,
		&client.Address.Street, &client.Address.Number, &client.Address.Complement,
		&client.Address.City, &client.Address.State, &client.Address.ZipCode,
		&client.CreatedAt, &client.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("client not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying client by id: %w", err)
	}

	return &client, nil
}
