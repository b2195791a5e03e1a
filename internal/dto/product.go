package dto

// Pointer fields distinguish an absent payload field from a zero value:
// empty names and zero or negative prices are stored as given, but a
// missing field is rejected.
type AddProductRequest struct {
	ID            string   `json:"id"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	PurchasePrice *float64 `json:"purchasePrice"`
	Stock         *int     `json:"stock"`
}

type CheckStockResponse struct {
	ProductID string `json:"productId"`
	Stock     int    `json:"stock"`
}
