// Package catalog calcula o catálogo personalizado de cada cliente.
package catalog

import (
	"context"

	"github.com/megaar/comercial-api/internal/application/authz"
	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/application/ports"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

// UseCase caso de uso do catálogo.
type UseCase struct {
	tx ports.TxRunner
}

// NewUseCase constrói o caso de uso.
func NewUseCase(tx ports.TxRunner) *UseCase {
	return &UseCase{tx: tx}
}

// VisibleFor devolve os produtos visíveis ao ator. O pessoal interno vê o
// catálogo completo. Um cliente vê um produto quando algum dos seus ofícios
// para esse produto atingiu pelo menos catalog_sent e o par ainda não tem
// nenhuma nota de aquisição; depois da compra o produto sai do catálogo.
func (uc *UseCase) VisibleFor(ctx context.Context, actor authz.Actor) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	err := uc.tx.View(ctx, func(r repository.Repositories) error {
		products, err := r.Products().List()
		if err != nil {
			return err
		}
		out = make([]dto.ProductResponse, 0, len(products))
		for _, p := range products {
			if !actor.IsStaff() {
				reached, err := r.Inquiries().HasReachedCatalog(actor.ClientID, p.ID)
				if err != nil {
					return err
				}
				if !reached {
					continue
				}
				sold, err := r.SalesOrders().ExistsForPair(actor.ClientID, p.ID)
				if err != nil {
					return err
				}
				if sold {
					continue
				}
			}
			out = append(out, dto.ProductResponse{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Stock:       p.Stock,
				Category:    p.Category,
				CreatedAt:   p.CreatedAt,
				UpdatedAt:   p.UpdatedAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
