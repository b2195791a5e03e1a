package invoice

import (
	"context"

	"radagast/internal/domain"
	"radagast/internal/dto"
)

type facade struct {
	repo Repository
}

func NewFacade(repo Repository) Facade {
	return &facade{repo: repo}
}

func (f *facade) Generate(ctx context.Context, req dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error) {
	items := make([]domain.InvoiceItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.InvoiceItem{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
		}
	}

	address := domain.Address{
		Street:     req.Street,
		Number:     req.Number,
		Complement: req.Complement,
		City:       req.City,
		State:      req.State,
		ZipCode:    req.ZipCode,
	}

	inv, err := domain.NewInvoice(req.Name, req.Document, address, items)
	if err != nil {
		return nil, err
	}

	if err := f.repo.Save(ctx, inv); err != nil {
		return nil, err
	}

	return toResponse(inv), nil
}

func (f *facade) Find(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := f.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toResponse(inv)
	resp.CreatedAt = inv.CreatedAt
	return resp, nil
}

func toResponse(inv *domain.Invoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemDTO, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = dto.InvoiceItemDTO{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
		}
	}

	return &dto.InvoiceResponse{
		ID:         inv.ID,
		Name:       inv.Name,
		Document:   inv.Document,
		Street:     inv.Address.Street,
		Number:     inv.Address.Number,
		Complement: inv.Address.Complement,
		City:       inv.Address.City,
		State:      inv.Address.State,
		ZipCode:    inv.Address.ZipCode,
		Items:      items,
		Total:      inv.Total(),
	}
}
