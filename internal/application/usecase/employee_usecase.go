package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

// EmployeeUseCase gestão de funcionários internos (role employee).
type EmployeeUseCase struct {
	repo repository.UserRepository
}

// NewEmployeeUseCase constrói o caso de uso.
func NewEmployeeUseCase(repo repository.UserRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create adiciona um funcionário com password em hash bcrypt. Devolve
// ErrEmailAlreadyExists se o email já está registado e ErrInvalidInput se o
// departamento não é reconhecido.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidDepartment(in.Department) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Role:         entity.RoleEmployee,
		Department:   in.Department,
		Avatar:       in.Avatar,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista todos os utilizadores internos (admin e funcionários).
func (uc *EmployeeUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.ListStaff()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Delete remove um funcionário.
func (uc *EmployeeUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if user.Role == entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		Avatar:     u.Avatar,
		ClientID:   u.ClientID,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
