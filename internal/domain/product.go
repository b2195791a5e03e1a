package domain

import "time"

// Product is the stock-keeping view of a product. Sales data lives in
// CatalogProduct; the two are sourced from separate tables and never
// reconciled here.
type Product struct {
	ID            string
	Name          string
	Description   string
	PurchasePrice float64
	Stock         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CatalogProduct is the sales-catalog view of a product. It doubles as
// the immutable line snapshot captured into an Order at placement time.
type CatalogProduct struct {
	ID          string
	Name        string
	Description string
	SalesPrice  float64
}
