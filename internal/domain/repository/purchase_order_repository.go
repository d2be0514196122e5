package repository

import "github.com/megaar/comercial-api/internal/domain/entity"

// PurchaseOrderRepository define o porto de persistência para PurchaseOrder (DIP).
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	List() ([]*entity.PurchaseOrder, error)
	Update(order *entity.PurchaseOrder) error
}
