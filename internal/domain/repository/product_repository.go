package repository

import "github.com/megaar/comercial-api/internal/domain/entity"

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// AdjustStock soma delta ao stock do produto. Um delta que deixasse o
	// stock negativo é rejeitado com domain.ErrInsufficientStock, sem mutação.
	AdjustStock(id string, delta int) error
	Delete(id string) error
}
