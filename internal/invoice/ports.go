package invoice

import (
	"context"

	"radagast/internal/domain"
	"radagast/internal/dto"
)

// Facade is the published surface of invoice generation.
type Facade interface {
	Generate(ctx context.Context, req dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error)
	Find(ctx context.Context, id string) (*dto.InvoiceResponse, error)
}

type Repository interface {
	Save(ctx context.Context, invoice *domain.Invoice) error
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
}
