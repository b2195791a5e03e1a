package checkout

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"radagast/internal/domain"
	"radagast/internal/dto"
	apperrors "radagast/internal/errors"
)

// PlaceOrderUseCase coordinates the five collaborator modules for a
// single placement. All collaborators arrive through the constructor;
// none of them know about each other.
type PlaceOrderUseCase struct {
	clientFacade  ClientFacade
	productFacade ProductFacade
	catalogFacade CatalogFacade
	paymentFacade PaymentFacade
	invoiceFacade InvoiceFacade
	orderRepo     OrderRepository
	logger        *zap.Logger
}

func NewPlaceOrderUseCase(
	clientFacade ClientFacade,
	productFacade ProductFacade,
	catalogFacade CatalogFacade,
	paymentFacade PaymentFacade,
	invoiceFacade InvoiceFacade,
	orderRepo OrderRepository,
	logger *zap.Logger,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		clientFacade:  clientFacade,
		productFacade: productFacade,
		catalogFacade: catalogFacade,
		paymentFacade: paymentFacade,
		invoiceFacade: invoiceFacade,
		orderRepo:     orderRepo,
		logger:        logger,
	}
}

// PlaceOrder runs the placement sequence: resolve the client, validate
// every requested product against stock and catalog, build the order,
// process payment, invoice on approval, persist. Validation failures
// abort with nothing persisted; a declined payment is a valid outcome
// that still reaches persistence as a pending order.
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*dto.PlaceOrderResponse, error) {
	uc.logger.Info("place order started",
		zap.String("clientId", req.ClientID),
		zap.Int("productCount", len(req.Products)),
	)

	client, err := uc.clientFacade.Find(ctx, req.ClientID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError("client not found")
		}
		return nil, err
	}

	if len(req.Products) == 0 {
		return nil, apperrors.NewValidationError("no products selected")
	}

	products, err := uc.validateProducts(ctx, req.Products)
	if err != nil {
		return nil, err
	}

	order, err := domain.NewOrder(client, products)
	if err != nil {
		return nil, err
	}

	transaction, err := uc.paymentFacade.Process(ctx, order.ID, order.Total)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("payment processed",
		zap.String("orderId", order.ID),
		zap.String("transactionId", transaction.ID),
		zap.String("status", transaction.Status),
	)

	invoiceID := ""
	if transaction.Status == domain.TransactionStatusApproved {
		order.Approve()

		invoiceResp, err := uc.invoiceFacade.Generate(ctx, buildInvoiceRequest(client, products))
		if err != nil {
			return nil, err
		}
		invoiceID = invoiceResp.ID
	}

	if err := uc.orderRepo.AddOrder(ctx, order); err != nil {
		return nil, err
	}

	uc.logger.Info("order placed",
		zap.String("orderId", order.ID),
		zap.String("status", order.Status),
		zap.Float64("total", order.Total),
		zap.String("invoiceId", invoiceID),
	)

	resultProducts := make([]dto.PlaceOrderProduct, len(order.Products))
	for i, p := range order.Products {
		resultProducts[i] = dto.PlaceOrderProduct{ProductID: p.ID}
	}

	return &dto.PlaceOrderResponse{
		ID:        order.ID,
		InvoiceID: invoiceID,
		Status:    order.Status,
		Total:     order.Total,
		Products:  resultProducts,
	}, nil
}

// validateProducts checks stock and catalog data for each requested
// product in request order. The first failing product aborts the whole
// placement; no partial order is built.
func (uc *PlaceOrderUseCase) validateProducts(ctx context.Context, requested []dto.PlaceOrderProduct) ([]domain.CatalogProduct, error) {
	products := make([]domain.CatalogProduct, 0, len(requested))

	for _, p := range requested {
		stock, err := uc.productFacade.CheckStock(ctx, p.ProductID)
		if err != nil {
			return nil, err
		}
		if stock.Stock <= 0 {
			uc.logger.Warn("product out of stock",
				zap.String("productId", p.ProductID),
				zap.Int("stock", stock.Stock),
			)
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("product %s is not available in stock", p.ProductID),
			)
		}

		catalogProduct, err := uc.catalogFacade.Find(ctx, p.ProductID)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				return nil, apperrors.NewNotFoundError("product not found")
			}
			return nil, err
		}

		products = append(products, *catalogProduct)
	}

	return products, nil
}

func buildInvoiceRequest(client *domain.Client, products []domain.CatalogProduct) dto.GenerateInvoiceRequest {
	items := make([]dto.InvoiceItemDTO, len(products))
	for i, p := range products {
		items[i] = dto.InvoiceItemDTO{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.SalesPrice,
		}
	}

	return dto.GenerateInvoiceRequest{
		Name:       client.Name,
		Document:   client.Document,
		Street:     client.Address.Street,
		Number:     client.Address.Number,
		Complement: client.Address.Complement,
		City:       client.Address.City,
		State:      client.Address.State,
		ZipCode:    client.Address.ZipCode,
		Items:      items,
	}
}
