package checkout

import (
	"database/sql"

	"go.uber.org/zap"

	"radagast/internal/checkout/repository"
)

type Module struct {
	UseCase    *PlaceOrderUseCase
	Controller *Controller
	Orders     OrderRepository
}

// NewModule assembles the placement use case from the collaborating
// modules' facades. All wiring is explicit; there is no registry.
func NewModule(
	db *sql.DB,
	clientFacade ClientFacade,
	productFacade ProductFacade,
	catalogFacade CatalogFacade,
	paymentFacade PaymentFacade,
	invoiceFacade InvoiceFacade,
	logger *zap.Logger,
) *Module {
	orderRepo := repository.NewMySQLOrderRepository(db)

	useCase := NewPlaceOrderUseCase(
		clientFacade,
		productFacade,
		catalogFacade,
		paymentFacade,
		invoiceFacade,
		orderRepo,
		logger,
	)

	return &Module{
		UseCase:    useCase,
		Controller: NewController(useCase, logger),
		Orders:     orderRepo,
	}
}
