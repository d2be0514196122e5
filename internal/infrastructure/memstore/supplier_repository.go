package memstore

import (
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementação do porto SupplierRepository sobre o documento.
type SupplierRepo struct {
	src Source
}

// NewSupplierRepository constrói o adaptador. Passar a Store ou uma tx (Source).
func NewSupplierRepository(src Source) *SupplierRepo {
	return &SupplierRepo{src: src}
}

// Create persiste um novo fornecedor. Id repetido → ErrDuplicate.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Suppliers {
			if d.Suppliers[i].ID == supplier.ID {
				return domain.ErrDuplicate
			}
		}
		d.Suppliers = append(d.Suppliers, *supplier)
		return nil
	})
}

// GetByID devolve o fornecedor ou (nil, nil) quando não existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.src.view(func(d *Document) error {
		for i := range d.Suppliers {
			if d.Suppliers[i].ID == id {
				s := d.Suppliers[i]
				out = &s
				return nil
			}
		}
		return nil
	})
	return out, err
}

// First devolve o fornecedor padrão (o primeiro registado) ou (nil, nil).
func (r *SupplierRepo) First() (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.src.view(func(d *Document) error {
		if len(d.Suppliers) > 0 {
			s := d.Suppliers[0]
			out = &s
		}
		return nil
	})
	return out, err
}

// List devolve todos os fornecedores.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	err := r.src.view(func(d *Document) error {
		for i := range d.Suppliers {
			s := d.Suppliers[i]
			out = append(out, &s)
		}
		return nil
	})
	return out, err
}
