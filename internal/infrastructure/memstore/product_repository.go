package memstore

import (
	"time"

	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação do porto ProductRepository sobre o documento.
type ProductRepo struct {
	src Source
}

// NewProductRepository constrói o adaptador. Passar a Store ou uma tx (Source).
func NewProductRepository(src Source) *ProductRepo {
	return &ProductRepo{src: src}
}

// Create persiste um novo produto. Id repetido → ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Products {
			if d.Products[i].ID == product.ID {
				return domain.ErrDuplicate
			}
		}
		d.Products = append(d.Products, *product)
		return nil
	})
}

// GetByID devolve o produto ou (nil, nil) quando não existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.src.view(func(d *Document) error {
		for i := range d.Products {
			if d.Products[i].ID == id {
				p := d.Products[i]
				out = &p
				return nil
			}
		}
		return nil
	})
	return out, err
}

// List devolve todos os produtos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.src.view(func(d *Document) error {
		for i := range d.Products {
			p := d.Products[i]
			out = append(out, &p)
		}
		return nil
	})
	return out, err
}

// Update substitui o produto com o mesmo id; inexistente é no-op.
func (r *ProductRepo) Update(product *entity.Product) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Products {
			if d.Products[i].ID == product.ID {
				d.Products[i] = *product
				return nil
			}
		}
		return nil
	})
}

// AdjustStock soma delta ao stock do produto. O stock nunca fica negativo:
// um decremento sem cobertura falha com ErrInsufficientStock sem mutação.
func (r *ProductRepo) AdjustStock(id string, delta int) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Products {
			if d.Products[i].ID == id {
				next := d.Products[i].Stock + delta
				if next < 0 {
					return domain.ErrInsufficientStock
				}
				d.Products[i].Stock = next
				d.Products[i].UpdatedAt = time.Now()
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Delete remove o produto por id.
func (r *ProductRepo) Delete(id string) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Products {
			if d.Products[i].ID == id {
				d.Products = append(d.Products[:i], d.Products[i+1:]...)
				return nil
			}
		}
		return nil
	})
}
