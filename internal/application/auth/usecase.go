// Package auth implementa registo público de clientes e autenticação.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/application/ports"
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
	"github.com/megaar/comercial-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registo e login.
type AuthUseCase struct {
	tx     ports.TxRunner
	jwtCfg JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(tx ports.TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{tx: tx, jwtCfg: jwtCfg}
}

// Register cria num só passo a ficha de Client e o User associado com role
// client, com a password em hash bcrypt. Devolve ErrEmailAlreadyExists se o
// email já está registado. O novo cliente entra autenticado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	if in.Name == "" || in.NIF == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var user *entity.User
	err = uc.tx.Run(ctx, func(r repository.Repositories) error {
		existing, err := r.Users().GetByEmail(in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		now := time.Now()
		client := &entity.Client{
			ID:        uuid.New().String(),
			Name:      in.Name,
			NIF:       in.NIF,
			Address:   in.Address,
			Email:     in.Email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := r.Clients().Create(client); err != nil {
			return err
		}
		user = &entity.User{
			ID:           uuid.New().String(),
			Name:         in.Name,
			Email:        in.Email,
			Role:         entity.RoleClient,
			Department:   entity.DepartmentNone,
			Avatar:       in.Avatar,
			PasswordHash: string(hash),
			ClientID:     client.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return r.Users().Create(user)
	})
	if err != nil {
		return nil, err
	}
	return uc.loginResponse(user)
}

// Login verifica email/password e devolve token + utilizador.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var user *entity.User
	err := uc.tx.View(ctx, func(r repository.Repositories) error {
		var err error
		user, err = r.Users().GetByEmail(in.Email)
		return err
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.loginResponse(user)
}

func (uc *AuthUseCase) loginResponse(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.Department, user.ClientID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse projeta um User para a resposta pública (sem hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
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
