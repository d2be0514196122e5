package entity

import "time"

// Supplier representa um fornecedor industrial (dados de referência imutáveis,
// usados pelas encomendas de reposição de stock).
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}
