// Package analytics agrega os indicadores do painel operacional.
package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/megaar/comercial-api/internal/application/authz"
	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/application/ports"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

// lowStockThreshold abaixo deste stock o produto conta como crítico no
// painel.
const lowStockThreshold = 5

// DashboardUseCase calcula os resumos do painel.
type DashboardUseCase struct {
	tx ports.TxRunner
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(tx ports.TxRunner) *DashboardUseCase {
	return &DashboardUseCase{tx: tx}
}

// StaffSummary agrega o trabalho pendente do pessoal interno: ofícios por
// triar, vendas em rutura, cobranças por fazer e o seu valor, produtos com
// stock crítico e encomendas a fornecedor em aberto.
func (uc *DashboardUseCase) StaffSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	out := &dto.DashboardSummaryDTO{AwaitingValue: decimal.Zero}
	err := uc.tx.View(ctx, func(r repository.Repositories) error {
		inquiries, err := r.Inquiries().List()
		if err != nil {
			return err
		}
		for _, inq := range inquiries {
			if inq.Status == entity.InquiryStatusPending {
				out.PendingInquiries++
			}
		}

		orders, err := r.SalesOrders().List()
		if err != nil {
			return err
		}
		for _, o := range orders {
			if o.Status == entity.OrderStatusBackordered {
				out.BackorderedOrders++
			}
			if o.Status == entity.OrderStatusSatisfied && o.PaymentStatus == entity.PaymentStatusPending {
				out.AwaitingPayment++
				if p, err := r.Products().GetByID(o.ProductID); err == nil && p != nil {
					out.AwaitingValue = out.AwaitingValue.Add(p.Price.Mul(decimal.NewFromInt(int64(o.Quantity))))
				}
			}
		}

		products, err := r.Products().List()
		if err != nil {
			return err
		}
		for _, p := range products {
			if p.Stock < lowStockThreshold {
				out.LowStockProducts++
			}
		}

		purchases, err := r.PurchaseOrders().List()
		if err != nil {
			return err
		}
		for _, po := range purchases {
			if po.Status == entity.PurchaseStatusOrdered {
				out.OpenPurchases++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClientSummary agrega a atividade do próprio cliente: ofícios abertos,
// notas de aquisição, encomendas em trânsito e notificações por ler.
func (uc *DashboardUseCase) ClientSummary(ctx context.Context, actor authz.Actor) (*dto.ClientDashboardDTO, error) {
	out := &dto.ClientDashboardDTO{}
	err := uc.tx.View(ctx, func(r repository.Repositories) error {
		inquiries, err := r.Inquiries().ListByClient(actor.ClientID)
		if err != nil {
			return err
		}
		out.Inquiries = len(inquiries)

		orders, err := r.SalesOrders().ListByClient(actor.ClientID)
		if err != nil {
			return err
		}
		out.Orders = len(orders)
		for _, o := range orders {
			if o.Status == entity.OrderStatusBackordered {
				out.InTransit++
			}
		}

		unread, err := r.Notifications().UnreadCount(actor.UserID)
		if err != nil {
			return err
		}
		out.Notifications = unread
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
