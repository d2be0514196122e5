package repository

import "github.com/megaar/comercial-api/internal/domain/entity"

// SupplierRepository define o porto de persistência para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	// First devolve o fornecedor padrão (o primeiro registado) para
	// encomendas automáticas; nil quando não há fornecedores.
	First() (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
}
