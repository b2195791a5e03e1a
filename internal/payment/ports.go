package payment

import (
	"context"

	"radagast/internal/domain"
)

// Facade is the published surface of payment processing. Status on the
// returned transaction is an open string; callers are expected to treat
// anything other than "approved" as not approved.
type Facade interface {
	Process(ctx context.Context, orderID string, amount float64) (*domain.Transaction, error)
}

type Repository interface {
	Save(ctx context.Context, tx *domain.Transaction) error
}
