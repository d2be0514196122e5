package dto

import "time"

// CreatePurchaseOrderRequest entrada para encomendar a um fornecedor.
type CreatePurchaseOrderRequest struct {
	SupplierID string `json:"supplierId" validate:"required"`
	ProductID  string `json:"productId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

// PurchaseOrderResponse saída de uma encomenda a fornecedor.
type PurchaseOrderResponse struct {
	ID           string    `json:"id"`
	SupplierID   string    `json:"supplierId"`
	SupplierName string    `json:"supplierName"`
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName"`
	Quantity     int       `json:"quantity"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`
}
