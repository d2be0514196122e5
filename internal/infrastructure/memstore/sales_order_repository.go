package memstore

import (
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implementação do porto SalesOrderRepository sobre o documento.
type SalesOrderRepo struct {
	src Source
}

// NewSalesOrderRepository constrói o adaptador. Passar a Store ou uma tx (Source).
func NewSalesOrderRepository(src Source) *SalesOrderRepo {
	return &SalesOrderRepo{src: src}
}

// Create persiste uma nova nota de aquisição, da mais recente para a mais
// antiga. Id repetido → ErrDuplicate.
func (r *SalesOrderRepo) Create(order *entity.SalesOrder) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.SalesOrders {
			if d.SalesOrders[i].ID == order.ID {
				return domain.ErrDuplicate
			}
		}
		d.SalesOrders = append([]entity.SalesOrder{*order}, d.SalesOrders...)
		return nil
	})
}

// GetByID devolve a nota ou (nil, nil) quando não existe.
func (r *SalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	var out *entity.SalesOrder
	err := r.src.view(func(d *Document) error {
		for i := range d.SalesOrders {
			if d.SalesOrders[i].ID == id {
				o := d.SalesOrders[i]
				out = &o
				return nil
			}
		}
		return nil
	})
	return out, err
}

// List devolve todas as notas de aquisição.
func (r *SalesOrderRepo) List() ([]*entity.SalesOrder, error) {
	var out []*entity.SalesOrder
	err := r.src.view(func(d *Document) error {
		for i := range d.SalesOrders {
			o := d.SalesOrders[i]
			out = append(out, &o)
		}
		return nil
	})
	return out, err
}

// ListByClient devolve as notas de um cliente.
func (r *SalesOrderRepo) ListByClient(clientID string) ([]*entity.SalesOrder, error) {
	var out []*entity.SalesOrder
	err := r.src.view(func(d *Document) error {
		for i := range d.SalesOrders {
			if d.SalesOrders[i].ClientID == clientID {
				o := d.SalesOrders[i]
				out = append(out, &o)
			}
		}
		return nil
	})
	return out, err
}

// Update substitui a nota com o mesmo id; inexistente é no-op.
func (r *SalesOrderRepo) Update(order *entity.SalesOrder) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.SalesOrders {
			if d.SalesOrders[i].ID == order.ID {
				d.SalesOrders[i] = *order
				return nil
			}
		}
		return nil
	})
}

// ExistsForPair indica se já existe uma venda para (cliente, produto).
func (r *SalesOrderRepo) ExistsForPair(clientID, productID string) (bool, error) {
	found := false
	err := r.src.view(func(d *Document) error {
		for i := range d.SalesOrders {
			if d.SalesOrders[i].ClientID == clientID && d.SalesOrders[i].ProductID == productID {
				found = true
				return nil
			}
		}
		return nil
	})
	return found, err
}
