// Package fulfillment implementa o motor de vendas: valida a nota de
// aquisição contra o pipeline de ofícios, decide entre satisfazer pelo
// stock ou encomendar ao fornecedor, e conduz o sub-fluxo de entrega e
// pagamento.
package fulfillment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/megaar/comercial-api/internal/application/authz"
	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/application/notification"
	"github.com/megaar/comercial-api/internal/application/ports"
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

// RestockBuffer unidades extra encomendadas ao fornecedor numa rutura de
// stock, além da quantidade vendida.
const RestockBuffer = 5

// UseCase casos de uso do motor de vendas.
type UseCase struct {
	tx ports.TxRunner
}

// NewUseCase constrói o caso de uso.
func NewUseCase(tx ports.TxRunner) *UseCase {
	return &UseCase{tx: tx}
}

// CreateOrder processa uma nova nota de aquisição.
//
// Pré-condição dura: existe um ofício interested para (cliente, produto);
// é o mecanismo que impede vendas fora do pipeline de qualificação. Com
// stock suficiente a nota nasce satisfied e o stock é decrementado; sem
// stock nasce backordered, o stock fica intacto e é gerada automaticamente
// uma encomenda ao fornecedor padrão com quantidade + RestockBuffer.
// O pagamento começa sempre pendente. Tudo numa única escrita atómica.
func (uc *UseCase) CreateOrder(ctx context.Context, actor authz.Actor, in dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	if in.ClientID == "" || in.ProductID == "" {
		return nil, fmt.Errorf("%w: clientId e productId são obrigatórios", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: a quantidade deve ser positiva", domain.ErrInvalidInput)
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("%w: método de pagamento %q", domain.ErrInvalidInput, in.PaymentMethod)
	}

	var out *dto.SalesOrderResponse
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		client, err := r.Clients().GetByID(in.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.ClientID)
		}
		product, err := r.Products().GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: produto %s", domain.ErrNotFound, in.ProductID)
		}
		if in.PaymentMethod == entity.PaymentMethodInstallments && !client.HasSpecialCredit {
			return domain.ErrNoSpecialCredit
		}
		interested, err := r.Inquiries().HasInterested(in.ClientID, in.ProductID)
		if err != nil {
			return err
		}
		if !interested {
			return domain.ErrNoInterest
		}

		order := &entity.SalesOrder{
			ID:            newRef("AQ"),
			ClientID:      in.ClientID,
			ProductID:     in.ProductID,
			Date:          time.Now(),
			Quantity:      in.Quantity,
			PaymentMethod: in.PaymentMethod,
			PaymentStatus: entity.PaymentStatusPending,
		}
		if err := Fulfill(r, order, product); err != nil {
			return err
		}
		if err := r.SalesOrders().Create(order); err != nil {
			return err
		}
		out = toResponse(order, client.Name, product.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Fulfill aplica o ramo stock/rutura a uma nota ainda não persistida:
// preenche o estado, decrementa o stock ou gera a encomenda automática, e
// emite as notificações correspondentes. Partilhado com a conversão direta
// de ofício em venda (que já passou o portão de interesse).
func Fulfill(r repository.Repositories, order *entity.SalesOrder, product *entity.Product) error {
	if product.Stock >= order.Quantity {
		order.Status = entity.OrderStatusSatisfied
		if err := r.Products().AdjustStock(product.ID, -order.Quantity); err != nil {
			return err
		}
		return notification.NotifyClientUser(r.Users(), r.Notifications(), order.ClientID,
			"Novo Pedido Satisfeito",
			fmt.Sprintf("O seu pedido %s foi processado e está pronto para entrega.", order.ID),
			entity.NotificationSuccess)
	}

	order.Status = entity.OrderStatusBackordered
	supplierID := ""
	if sup, err := r.Suppliers().First(); err != nil {
		return err
	} else if sup != nil {
		supplierID = sup.ID
	}
	po := &entity.PurchaseOrder{
		ID:         newRef("PO-AUTO"),
		SupplierID: supplierID,
		ProductID:  product.ID,
		Quantity:   order.Quantity + RestockBuffer,
		Date:       time.Now(),
		Status:     entity.PurchaseStatusOrdered,
	}
	if err := r.PurchaseOrders().Create(po); err != nil {
		return err
	}
	return notification.FanOutStaff(r.Users(), r.Notifications(),
		"Rutura de Stock",
		fmt.Sprintf("Pedido %s gerou encomenda automática %s ao fornecedor.", order.ID, po.ID),
		entity.NotificationWarning)
}

// ConfirmReceipt é a ação self-service do cliente: confirma a receção da
// encomenda, passando a nota a satisfied e avisando o pessoal interno de
// que o pagamento pode ser cobrado. Só o cliente dono pode confirmar, e
// apenas enquanto a nota não está satisfied.
func (uc *UseCase) ConfirmReceipt(ctx context.Context, actor authz.Actor, orderID string) error {
	return uc.tx.Run(ctx, func(r repository.Repositories) error {
		order, err := r.SalesOrders().GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: nota de aquisição %s", domain.ErrNotFound, orderID)
		}
		if actor.ClientID == "" || order.ClientID != actor.ClientID {
			return domain.ErrForbidden
		}
		if order.Status == entity.OrderStatusSatisfied {
			return fmt.Errorf("%w: a encomenda já foi entregue", domain.ErrConflict)
		}
		order.Status = entity.OrderStatusSatisfied
		if err := r.SalesOrders().Update(order); err != nil {
			return err
		}
		return notification.FanOutStaff(r.Users(), r.Notifications(),
			"Produto Entregue",
			fmt.Sprintf("O cliente confirmou a receção da encomenda %s. Pode processar o pagamento.", order.ID),
			entity.NotificationInfo)
	})
}

// ConfirmPayment regista a cobrança de uma nota já entregue. Pagamento
// antes da entrega é um erro bloqueante de regra de negócio.
func (uc *UseCase) ConfirmPayment(ctx context.Context, actor authz.Actor, orderID string) error {
	return uc.tx.Run(ctx, func(r repository.Repositories) error {
		order, err := r.SalesOrders().GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: nota de aquisição %s", domain.ErrNotFound, orderID)
		}
		if order.Status != entity.OrderStatusSatisfied {
			return domain.ErrNotDelivered
		}
		order.PaymentStatus = entity.PaymentStatusPaid
		return r.SalesOrders().Update(order)
	})
}

// List devolve as notas visíveis ao ator: todas para o pessoal interno,
// apenas as próprias para um cliente. Referências que já não resolvem
// degradam para rótulos de desconhecido.
func (uc *UseCase) List(ctx context.Context, actor authz.Actor) ([]dto.SalesOrderResponse, error) {
	var out []dto.SalesOrderResponse
	err := uc.tx.View(ctx, func(r repository.Repositories) error {
		var (
			orders []*entity.SalesOrder
			err    error
		)
		if actor.IsStaff() {
			orders, err = r.SalesOrders().List()
		} else {
			orders, err = r.SalesOrders().ListByClient(actor.ClientID)
		}
		if err != nil {
			return err
		}
		out = make([]dto.SalesOrderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, *toResponse(o, clientName(r, o.ClientID), productName(r, o.ProductID)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func clientName(r repository.Repositories, id string) string {
	if c, err := r.Clients().GetByID(id); err == nil && c != nil {
		return c.Name
	}
	return "Cliente Desconhecido"
}

func productName(r repository.Repositories, id string) string {
	if p, err := r.Products().GetByID(id); err == nil && p != nil {
		return p.Name
	}
	return "Produto Desconhecido"
}

func toResponse(o *entity.SalesOrder, clientName, productName string) *dto.SalesOrderResponse {
	return &dto.SalesOrderResponse{
		ID:            o.ID,
		ClientID:      o.ClientID,
		ClientName:    clientName,
		ProductID:     o.ProductID,
		ProductName:   productName,
		Date:          o.Date,
		Quantity:      o.Quantity,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
	}
}

func newRef(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:6])
}
