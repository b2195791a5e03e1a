package dto

import "time"

type InvoiceItemDTO struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type GenerateInvoiceRequest struct {
	Name       string           `json:"name"`
	Document   string           `json:"document"`
	Street     string           `json:"street"`
	Number     string           `json:"number"`
	Complement string           `json:"complement"`
	City       string           `json:"city"`
	State      string           `json:"state"`
	ZipCode    string           `json:"zipCode"`
	Items      []InvoiceItemDTO `json:"items"`
}

type InvoiceResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Document   string           `json:"document"`
	Street     string           `json:"street"`
	Number     string           `json:"number"`
	Complement string           `json:"complement"`
	City       string           `json:"city"`
	State      string           `json:"state"`
	ZipCode    string           `json:"zipCode"`
	Items      []InvoiceItemDTO `json:"items"`
	Total      float64          `json:"total"`
	CreatedAt  time.Time        `json:"createdAt,omitempty"`
}
