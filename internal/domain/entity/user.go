package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleClient   = "client"
)

// Departamentos válidos para funcionários. DepartmentNone aplica-se a
// admins e a utilizadores de cliente, onde o departamento não tem significado.
const (
	DepartmentSales      = "sales"
	DepartmentStock      = "stock"
	DepartmentManagement = "management"
	DepartmentNone       = "none"
)

// User representa um utilizador do sistema: pessoal interno (admin ou
// funcionário com departamento) ou o utilizador associado a um Client.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`       // admin, employee, client
	Department   string    `json:"department"` // obrigatório apenas para employee
	Avatar       string    `json:"avatar"`
	PasswordHash string    `json:"passwordHash"` // bcrypt, nunca em claro depois do registo
	ClientID     string    `json:"clientId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsStaff indica se o utilizador é pessoal interno (admin ou funcionário).
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleEmployee
}

// ValidDepartment valida o departamento de um funcionário.
func ValidDepartment(d string) bool {
	switch d {
	case DepartmentSales, DepartmentStock, DepartmentManagement, DepartmentNone:
		return true
	}
	return false
}
