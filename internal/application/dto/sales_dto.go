package dto

import "time"

// CreateSalesOrderRequest entrada para processar uma nota de aquisição.
type CreateSalesOrderRequest struct {
	ClientID      string `json:"clientId" validate:"required"`
	ProductID     string `json:"productId" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

// SalesOrderResponse saída de uma nota de aquisição.
type SalesOrderResponse struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"clientId"`
	ClientName    string    `json:"clientName"`
	ProductID     string    `json:"productId"`
	ProductName   string    `json:"productName"`
	Date          time.Time `json:"date"`
	Quantity      int       `json:"quantity"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus"`
}
