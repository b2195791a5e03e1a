package payment

import (
	"database/sql"

	"radagast/internal/payment/repository"
)

type Module struct {
	Facade Facade
}

func NewModule(db *sql.DB) *Module {
	repo := repository.NewMySQLTransactionRepository(db)
	return &Module{Facade: NewFacade(repo)}
}
