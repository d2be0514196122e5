package repository

import "github.com/megaar/comercial-api/internal/domain/entity"

// ClientRepository define o porto de persistência para Client (DIP).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
}
