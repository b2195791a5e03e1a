package product

import (
	"database/sql"

	"go.uber.org/zap"

	"radagast/internal/product/repository"
)

type Module struct {
	Facade     Facade
	Controller *Controller
}

func NewModule(db *sql.DB, logger *zap.Logger) *Module {
	repo := repository.NewMySQLProductRepository(db)
	facade := NewFacade(repo)
	return &Module{
		Facade:     facade,
		Controller: NewController(facade, logger),
	}
}
