package repository

import "github.com/megaar/comercial-api/internal/domain/entity"

// SalesOrderRepository define o porto de persistência para SalesOrder (DIP).
type SalesOrderRepository interface {
	Create(order *entity.SalesOrder) error
	GetByID(id string) (*entity.SalesOrder, error)
	List() ([]*entity.SalesOrder, error)
	ListByClient(clientID string) ([]*entity.SalesOrder, error)
	Update(order *entity.SalesOrder) error
	// ExistsForPair indica se já existe uma venda para (cliente, produto);
	// esconde o produto do catálogo desse cliente.
	ExistsForPair(clientID, productID string) (bool, error)
}
