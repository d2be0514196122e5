package memstore

import (
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementação do porto PurchaseOrderRepository sobre o documento.
type PurchaseOrderRepo struct {
	src Source
}

// NewPurchaseOrderRepository constrói o adaptador. Passar a Store ou uma tx (Source).
func NewPurchaseOrderRepository(src Source) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{src: src}
}

// Create persiste uma nova encomenda a fornecedor, da mais recente para a
// mais antiga. Id repetido → ErrDuplicate.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.PurchaseOrders {
			if d.PurchaseOrders[i].ID == order.ID {
				return domain.ErrDuplicate
			}
		}
		d.PurchaseOrders = append([]entity.PurchaseOrder{*order}, d.PurchaseOrders...)
		return nil
	})
}

// GetByID devolve a encomenda ou (nil, nil) quando não existe.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	var out *entity.PurchaseOrder
	err := r.src.view(func(d *Document) error {
		for i := range d.PurchaseOrders {
			if d.PurchaseOrders[i].ID == id {
				o := d.PurchaseOrders[i]
				out = &o
				return nil
			}
		}
		return nil
	})
	return out, err
}

// List devolve todas as encomendas a fornecedor.
func (r *PurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	err := r.src.view(func(d *Document) error {
		for i := range d.PurchaseOrders {
			o := d.PurchaseOrders[i]
			out = append(out, &o)
		}
		return nil
	})
	return out, err
}

// Update substitui a encomenda com o mesmo id; inexistente é no-op.
func (r *PurchaseOrderRepo) Update(order *entity.PurchaseOrder) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.PurchaseOrders {
			if d.PurchaseOrders[i].ID == order.ID {
				d.PurchaseOrders[i] = *order
				return nil
			}
		}
		return nil
	})
}
