package entity

import "time"

// Estados de uma SalesOrder (Nota de Aquisição).
const (
	OrderStatusPending     = "pending"
	OrderStatusSatisfied   = "satisfied"   // stock disponível ou entrega confirmada
	OrderStatusBackordered = "backordered" // stock insuficiente, encomenda a fornecedor gerada
)

// Métodos de pagamento. Installments só é válido para clientes com crédito especial.
const (
	PaymentMethodFull         = "full"
	PaymentMethodCash         = "cash"
	PaymentMethodTransfer     = "transfer"
	PaymentMethodInstallments = "installments"
)

// Estados de pagamento. Paid exige que a ordem esteja satisfied.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// SalesOrder representa uma Nota de Aquisição: o registo comercial da venda.
// Só pode existir para um par (cliente, produto) com um ofício interested.
type SalesOrder struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"clientId"`
	ProductID     string    `json:"productId"`
	Date          time.Time `json:"date"`
	Quantity      int       `json:"quantity"` // inteiro positivo
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus"`
}

// ValidPaymentMethod valida um método de pagamento.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodFull, PaymentMethodCash, PaymentMethodTransfer, PaymentMethodInstallments:
		return true
	}
	return false
}
