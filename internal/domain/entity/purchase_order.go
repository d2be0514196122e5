package entity

import "time"

// Estados de uma PurchaseOrder (encomenda a fornecedor).
const (
	PurchaseStatusOrdered  = "ordered"
	PurchaseStatusReceived = "received"
)

// PurchaseOrder representa uma encomenda de reposição a um fornecedor,
// criada manualmente pelo pessoal de stock ou automaticamente quando uma
// venda encontra rutura de stock.
type PurchaseOrder struct {
	ID         string    `json:"id"`
	SupplierID string    `json:"supplierId"`
	ProductID  string    `json:"productId"`
	Quantity   int       `json:"quantity"` // inteiro positivo
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}
