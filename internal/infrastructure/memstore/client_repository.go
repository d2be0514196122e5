package memstore

import (
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementação do porto ClientRepository sobre o documento.
type ClientRepo struct {
	src Source
}

// NewClientRepository constrói o adaptador. Passar a Store ou uma tx (Source).
func NewClientRepository(src Source) *ClientRepo {
	return &ClientRepo{src: src}
}

// Create persiste um novo cliente. Id repetido → ErrDuplicate.
func (r *ClientRepo) Create(client *entity.Client) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Clients {
			if d.Clients[i].ID == client.ID {
				return domain.ErrDuplicate
			}
		}
		d.Clients = append(d.Clients, *client)
		return nil
	})
}

// GetByID devolve o cliente ou (nil, nil) quando não existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	var out *entity.Client
	err := r.src.view(func(d *Document) error {
		for i := range d.Clients {
			if d.Clients[i].ID == id {
				c := d.Clients[i]
				out = &c
				return nil
			}
		}
		return nil
	})
	return out, err
}

// List devolve todos os clientes.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	var out []*entity.Client
	err := r.src.view(func(d *Document) error {
		for i := range d.Clients {
			c := d.Clients[i]
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

// Update substitui o cliente com o mesmo id; inexistente é no-op.
func (r *ClientRepo) Update(client *entity.Client) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Clients {
			if d.Clients[i].ID == client.ID {
				d.Clients[i] = *client
				return nil
			}
		}
		return nil
	})
}
