package repository

import "github.com/megaar/comercial-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// FindByClientID devolve o utilizador associado a um Client, se existir.
	FindByClientID(clientID string) (*entity.User, error)
	// ListStaff devolve todos os utilizadores não-cliente (destinatários de fan-out).
	ListStaff() ([]*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
