package invoice

import (
	"database/sql"

	"go.uber.org/zap"

	"radagast/internal/invoice/repository"
)

type Module struct {
	Facade     Facade
	Controller *Controller
}

func NewModule(db *sql.DB, logger *zap.Logger) *Module {
	repo := repository.NewMySQLInvoiceRepository(db)
	facade := NewFacade(repo)
	return &Module{
		Facade:     facade,
		Controller: NewController(facade, logger),
	}
}
