package memstore

import (
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação do porto UserRepository sobre o documento.
type UserRepo struct {
	src Source
}

// NewUserRepository constrói o adaptador. Passar a Store ou uma tx (Source).
func NewUserRepository(src Source) *UserRepo {
	return &UserRepo{src: src}
}

// Create persiste um novo utilizador. Id ou email repetidos → ErrDuplicate.
func (r *UserRepo) Create(user *entity.User) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Users {
			if d.Users[i].ID == user.ID || d.Users[i].Email == user.Email {
				return domain.ErrDuplicate
			}
		}
		d.Users = append(d.Users, *user)
		return nil
	})
}

// GetByID devolve o utilizador ou (nil, nil) quando não existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	var out *entity.User
	err := r.src.view(func(d *Document) error {
		for i := range d.Users {
			if d.Users[i].ID == id {
				u := d.Users[i]
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

// GetByEmail devolve o utilizador pelo email ou (nil, nil).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	var out *entity.User
	err := r.src.view(func(d *Document) error {
		for i := range d.Users {
			if d.Users[i].Email == email {
				u := d.Users[i]
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

// FindByClientID devolve o utilizador associado ao Client, se existir.
func (r *UserRepo) FindByClientID(clientID string) (*entity.User, error) {
	if clientID == "" {
		return nil, nil
	}
	var out *entity.User
	err := r.src.view(func(d *Document) error {
		for i := range d.Users {
			if d.Users[i].ClientID == clientID {
				u := d.Users[i]
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

// ListStaff devolve todos os utilizadores não-cliente.
func (r *UserRepo) ListStaff() ([]*entity.User, error) {
	var out []*entity.User
	err := r.src.view(func(d *Document) error {
		for i := range d.Users {
			if d.Users[i].Role != entity.RoleClient {
				u := d.Users[i]
				out = append(out, &u)
			}
		}
		return nil
	})
	return out, err
}

// List devolve todos os utilizadores.
func (r *UserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	err := r.src.view(func(d *Document) error {
		for i := range d.Users {
			u := d.Users[i]
			out = append(out, &u)
		}
		return nil
	})
	return out, err
}

// Update substitui o utilizador com o mesmo id; inexistente é no-op.
func (r *UserRepo) Update(user *entity.User) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Users {
			if d.Users[i].ID == user.ID {
				d.Users[i] = *user
				return nil
			}
		}
		return nil
	})
}

// Delete remove o utilizador por id.
func (r *UserRepo) Delete(id string) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Users {
			if d.Users[i].ID == id {
				d.Users = append(d.Users[:i], d.Users[i+1:]...)
				return nil
			}
		}
		return nil
	})
}
