package dto

import "time"

// RegisterRequest entrada do registo público de clientes: cria o Client e o
// User associado num só passo.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	NIF      string `json:"nif" validate:"required"`
	Address  string `json:"address"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Avatar   string `json:"avatar"`
}

// LoginRequest credenciais de entrada.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token + utilizador autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateEmployeeRequest entrada para adicionar um funcionário (staff).
type CreateEmployeeRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Department string `json:"department" validate:"required"`
	Avatar     string `json:"avatar"`
}

// UserResponse saída de um utilizador (nunca inclui o hash da password).
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Avatar     string    `json:"avatar,omitempty"`
	ClientID   string    `json:"clientId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
