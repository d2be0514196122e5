package fulfillment

import (
	"context"
	"fmt"

	"github.com/megaar/comercial-api/internal/application/authz"
	"github.com/megaar/comercial-api/internal/application/ports"
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

// PDFUseCase produz a nota de aquisição em PDF.
type PDFUseCase struct {
	tx  ports.TxRunner
	gen ports.OrderNotePDFGenerator
}

// NewPDFUseCase constrói o caso de uso de impressão.
func NewPDFUseCase(tx ports.TxRunner, gen ports.OrderNotePDFGenerator) *PDFUseCase {
	return &PDFUseCase{tx: tx, gen: gen}
}

// OrderNote devolve o PDF da nota indicada. Clientes só imprimem as
// próprias notas.
func (uc *PDFUseCase) OrderNote(ctx context.Context, actor authz.Actor, orderID string) ([]byte, error) {
	var (
		order   *entity.SalesOrder
		client  *entity.Client
		product *entity.Product
	)
	err := uc.tx.View(ctx, func(r repository.Repositories) error {
		var err error
		order, err = r.SalesOrders().GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: nota de aquisição %s", domain.ErrNotFound, orderID)
		}
		if !actor.IsStaff() && order.ClientID != actor.ClientID {
			return domain.ErrForbidden
		}
		client, err = r.Clients().GetByID(order.ClientID)
		if err != nil {
			return err
		}
		product, err = r.Products().GetByID(order.ProductID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.gen.OrderNote(order, client, product)
}
