package catalog

import (
	"database/sql"

	"radagast/internal/catalog/repository"
)

type Module struct {
	Facade Facade
}

func NewModule(db *sql.DB) *Module {
	repo := repository.NewMySQLCatalogRepository(db)
	return &Module{Facade: NewFacade(repo)}
}
