package dto

type PlaceOrderProduct struct {
	ProductID string `json:"productId"`
}

type PlaceOrderRequest struct {
	ClientID string              `json:"clientId"`
	Products []PlaceOrderProduct `json:"products"`
}

type PlaceOrderResponse struct {
	ID        string              `json:"id"`
	InvoiceID string              `json:"invoiceId"`
	Status    string              `json:"status"`
	Total     float64             `json:"total"`
	Products  []PlaceOrderProduct `json:"products"`
}
