package dto

// CreateSupplierRequest entrada para registar um fornecedor.
type CreateSupplierRequest struct {
	Name     string `json:"name" validate:"required"`
	Contact  string `json:"contact"`
	Category string `json:"category"`
}

// SupplierResponse saída de um fornecedor.
type SupplierResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Category string `json:"category"`
}
