// Package procurement gere as encomendas a fornecedores e a receção de
// mercadoria no armazém.
package procurement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/application/notification"
	"github.com/megaar/comercial-api/internal/application/ports"
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

// UseCase casos de uso de aprovisionamento.
type UseCase struct {
	tx ports.TxRunner
}

// NewUseCase constrói o caso de uso.
func NewUseCase(tx ports.TxRunner) *UseCase {
	return &UseCase{tx: tx}
}

// CreateOrder regista uma encomenda manual a um fornecedor. O stock só é
// movimentado na receção.
func (uc *UseCase) CreateOrder(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID == "" || in.ProductID == "" {
		return nil, fmt.Errorf("%w: supplierId e productId são obrigatórios", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: a quantidade deve ser positiva", domain.ErrInvalidInput)
	}

	var out *dto.PurchaseOrderResponse
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		sup, err := r.Suppliers().GetByID(in.SupplierID)
		if err != nil {
			return err
		}
		if sup == nil {
			return fmt.Errorf("%w: fornecedor %s", domain.ErrNotFound, in.SupplierID)
		}
		product, err := r.Products().GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: produto %s", domain.ErrNotFound, in.ProductID)
		}

		po := &entity.PurchaseOrder{
			ID:         newRef("PO"),
			SupplierID: in.SupplierID,
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			Date:       time.Now(),
			Status:     entity.PurchaseStatusOrdered,
		}
		if err := r.PurchaseOrders().Create(po); err != nil {
			return err
		}
		out = toResponse(po, sup.Name, product.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReceiveStock dá entrada da mercadoria de uma encomenda: credita o stock
// do produto, marca a encomenda como received e difunde o aviso de stock
// atualizado. Receber duas vezes a mesma encomenda é um conflito; o
// crédito nunca é aplicado em duplicado.
func (uc *UseCase) ReceiveStock(ctx context.Context, orderID string) (*dto.PurchaseOrderResponse, error) {
	var out *dto.PurchaseOrderResponse
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		po, err := r.PurchaseOrders().GetByID(orderID)
		if err != nil {
			return err
		}
		if po == nil {
			return fmt.Errorf("%w: encomenda %s", domain.ErrNotFound, orderID)
		}
		if po.Status == entity.PurchaseStatusReceived {
			return fmt.Errorf("%w: encomenda %s", domain.ErrAlreadyReceived, po.ID)
		}
		if err := r.Products().AdjustStock(po.ProductID, po.Quantity); err != nil {
			return err
		}
		po.Status = entity.PurchaseStatusReceived
		if err := r.PurchaseOrders().Update(po); err != nil {
			return err
		}

		productName := "Produto Desconhecido"
		if p, err := r.Products().GetByID(po.ProductID); err == nil && p != nil {
			productName = p.Name
		}
		if err := notification.Notify(r.Notifications(), entity.BroadcastTarget,
			"Stock Atualizado",
			fmt.Sprintf("Foram recebidas %d unidades de %s no armazém.", po.Quantity, productName),
			entity.NotificationSuccess); err != nil {
			return err
		}
		out = toResponse(po, supplierName(r, po.SupplierID), productName)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devolve todas as encomendas a fornecedores, mais recentes primeiro.
func (uc *UseCase) List(ctx context.Context) ([]dto.PurchaseOrderResponse, error) {
	var out []dto.PurchaseOrderResponse
	err := uc.tx.View(ctx, func(r repository.Repositories) error {
		orders, err := r.PurchaseOrders().List()
		if err != nil {
			return err
		}
		out = make([]dto.PurchaseOrderResponse, 0, len(orders))
		for _, po := range orders {
			productName := "Produto Desconhecido"
			if p, err := r.Products().GetByID(po.ProductID); err == nil && p != nil {
				productName = p.Name
			}
			out = append(out, *toResponse(po, supplierName(r, po.SupplierID), productName))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func supplierName(r repository.Repositories, id string) string {
	if s, err := r.Suppliers().GetByID(id); err == nil && s != nil {
		return s.Name
	}
	return "Fornecedor Desconhecido"
}

func toResponse(po *entity.PurchaseOrder, supplierName, productName string) *dto.PurchaseOrderResponse {
	return &dto.PurchaseOrderResponse{
		ID:           po.ID,
		SupplierID:   po.SupplierID,
		SupplierName: supplierName,
		ProductID:    po.ProductID,
		ProductName:  productName,
		Quantity:     po.Quantity,
		Date:         po.Date,
		Status:       po.Status,
	}
}

func newRef(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:6])
}
