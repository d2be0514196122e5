package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes registados pelo pessoal
// interno (o registo self-service vive no pacote auth).
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create regista um novo cliente.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.NIF == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:               uuid.New().String(),
		Name:             in.Name,
		NIF:              in.NIF,
		Address:          in.Address,
		Email:            in.Email,
		HasSpecialCredit: in.HasSpecialCredit,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtém um cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// Update atualiza os campos editáveis de um cliente, incluindo a concessão
// de crédito especial.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.NIF != nil {
		client.NIF = *in.NIF
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.HasSpecialCredit != nil {
		client.HasSpecialCredit = *in.HasSpecialCredit
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista todos os clientes.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	clients, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:               c.ID,
		Name:             c.Name,
		NIF:              c.NIF,
		Address:          c.Address,
		Email:            c.Email,
		HasSpecialCredit: c.HasSpecialCredit,
		CreatedAt:        c.CreatedAt,
	}
}
