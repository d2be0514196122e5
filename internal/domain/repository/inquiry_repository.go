package repository

import "github.com/megaar/comercial-api/internal/domain/entity"

// InquiryRepository define o porto de persistência para Inquiry (DIP).
type InquiryRepository interface {
	Create(inquiry *entity.Inquiry) error
	GetByID(id string) (*entity.Inquiry, error)
	List() ([]*entity.Inquiry, error)
	ListByClient(clientID string) ([]*entity.Inquiry, error)
	Update(inquiry *entity.Inquiry) error
	// HasInterested indica se existe um ofício interested para o par
	// (cliente, produto), a pré-condição dura da criação de vendas.
	HasInterested(clientID, productID string) (bool, error)
	// HasReachedCatalog indica se algum ofício do par atingiu
	// catalog_sent, proposal_sent ou interested (visibilidade de catálogo).
	HasReachedCatalog(clientID, productID string) (bool, error)
}
