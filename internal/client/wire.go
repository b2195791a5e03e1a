package client

import (
	"database/sql"

	"go.uber.org/zap"

	"radagast/internal/client/repository"
)

type Module struct {
	Facade     Facade
	Controller *Controller
}

func NewModule(db *sql.DB, logger *zap.Logger) *Module {
	repo := repository.NewMySQLClientRepository(db)
	facade := NewFacade(repo)
	return &Module{
		Facade:     facade,
		Controller: NewController(facade, logger),
	}
}
