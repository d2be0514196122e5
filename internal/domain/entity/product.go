package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um equipamento do catálogo MEGA-AR.
// Stock é o único campo mutável pelos fluxos de negócio: decrementado pelo
// motor de vendas e incrementado exclusivamente pela receção de encomendas
// a fornecedor. Nunca fica negativo.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"` // preço de venda, não negativo
	Stock       int             `json:"stock"` // unidades em armazém, nunca negativo
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
