package dto

import "time"

// CreateClientRequest entrada para registar um cliente (pelo pessoal interno).
type CreateClientRequest struct {
	Name             string `json:"name" validate:"required"`
	NIF              string `json:"nif" validate:"required"`
	Address          string `json:"address"`
	Email            string `json:"email" validate:"required,email"`
	HasSpecialCredit bool   `json:"hasSpecialCredit"`
}

// UpdateClientRequest entrada para atualização administrativa de um cliente.
type UpdateClientRequest struct {
	Name             *string `json:"name"`
	NIF              *string `json:"nif"`
	Address          *string `json:"address"`
	Email            *string `json:"email"`
	HasSpecialCredit *bool   `json:"hasSpecialCredit"`
}

// ClientResponse saída de um cliente.
type ClientResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	NIF              string    `json:"nif"`
	Address          string    `json:"address"`
	Email            string    `json:"email"`
	HasSpecialCredit bool      `json:"hasSpecialCredit"`
	CreatedAt        time.Time `json:"createdAt"`
}
