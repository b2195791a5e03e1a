package payment

import (
	"context"

	"radagast/internal/domain"
)

type facade struct {
	repo Repository
}

func NewFacade(repo Repository) Facade {
	return &facade{repo: repo}
}

// Process settles the transaction and persists it regardless of the
// outcome. A declined transaction is a stored business fact, not an
// error.
func (f *facade) Process(ctx context.Context, orderID string, amount float64) (*domain.Transaction, error) {
	tx := domain.NewTransaction(orderID, amount)
	tx.Process()

	if err := f.repo.Save(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}
