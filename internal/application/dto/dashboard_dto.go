package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumo operacional para o pessoal interno.
type DashboardSummaryDTO struct {
	PendingInquiries  int             `json:"pendingInquiries"`
	BackorderedOrders int             `json:"backorderedOrders"`
	AwaitingPayment   int             `json:"awaitingPayment"`
	AwaitingValue     decimal.Decimal `json:"awaitingValue"` // valor por cobrar das vendas entregues
	LowStockProducts  int             `json:"lowStockProducts"`
	OpenPurchases     int             `json:"openPurchases"`
}

// ClientDashboardDTO resumo para o utilizador de um cliente.
type ClientDashboardDTO struct {
	Inquiries     int `json:"inquiries"`
	Orders        int `json:"orders"`
	InTransit     int `json:"inTransit"`
	Notifications int `json:"notifications"` // por ler
}
