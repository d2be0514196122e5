// Package inquiry gere o ciclo de vida dos ofícios de consulta: entrada
// pending, envio de catálogo ou proposta, registo de interesse, rejeição e
// conversão direta em venda.
package inquiry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/megaar/comercial-api/internal/application/authz"
	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/application/fulfillment"
	"github.com/megaar/comercial-api/internal/application/notification"
	"github.com/megaar/comercial-api/internal/application/ports"
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

// UseCase casos de uso de ofícios.
type UseCase struct {
	tx ports.TxRunner
}

// NewUseCase constrói o caso de uso.
func NewUseCase(tx ports.TxRunner) *UseCase {
	return &UseCase{tx: tx}
}

// transição legítima de estado de ofício; as rejeições são tratadas à
// parte porque partem de qualquer estado não terminal.
type transition struct {
	from, to string
}

// staffTransitions avanços reservados ao pessoal interno.
var staffTransitions = map[transition]bool{
	{entity.InquiryStatusPending, entity.InquiryStatusCatalogSent}:      true,
	{entity.InquiryStatusPending, entity.InquiryStatusProposalSent}:     true,
	{entity.InquiryStatusCatalogSent, entity.InquiryStatusProposalSent}: true,
	{entity.InquiryStatusProposalSent, entity.InquiryStatusInterested}:  true,
}

// clientTransitions avanços que o próprio cliente pode fazer.
var clientTransitions = map[transition]bool{
	{entity.InquiryStatusCatalogSent, entity.InquiryStatusInterested}: true,
}

// Create regista um novo ofício em estado pending e avisa individualmente
// todo o pessoal interno. Um ator cliente só abre ofícios em nome próprio.
func (uc *UseCase) Create(ctx context.Context, actor authz.Actor, in dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	clientID := in.ClientID
	if !actor.IsStaff() {
		clientID = actor.ClientID
	}
	if clientID == "" {
		return nil, fmt.Errorf("%w: clientId é obrigatório", domain.ErrInvalidInput)
	}

	var out *dto.InquiryResponse
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		client, err := r.Clients().GetByID(clientID)
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, clientID)
		}
		equipment := "Equipamento Especial"
		if in.ProductID != "" {
			if p, err := r.Products().GetByID(in.ProductID); err != nil {
				return err
			} else if p != nil {
				equipment = p.Name
			}
		}

		inq := &entity.Inquiry{
			ID:            newRef("OF"),
			ClientID:      clientID,
			ProductID:     in.ProductID,
			Date:          time.Now(),
			EquipmentType: equipment,
			Details:       in.Details,
			Status:        entity.InquiryStatusPending,
		}
		if err := r.Inquiries().Create(inq); err != nil {
			return err
		}
		if err := notification.FanOutStaff(r.Users(), r.Notifications(),
			"Novo Ofício Recebido",
			fmt.Sprintf("O cliente %s submeteu o ofício %s sobre %s.", client.Name, inq.ID, equipment),
			entity.NotificationInfo); err != nil {
			return err
		}
		out = toResponse(inq, client.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus avança um ofício na tabela de transições. O pessoal interno
// envia catálogo ou proposta, regista interesse e rejeita; o cliente dono
// apenas declara interesse sobre um catálogo recebido. Transições do
// pessoal ficam assinadas no campo assignedTo. O cliente é notificado de
// cada avanço; um interesse declarado pelo cliente notifica o pessoal.
func (uc *UseCase) UpdateStatus(ctx context.Context, actor authz.Actor, id, status string) (*dto.InquiryResponse, error) {
	if !entity.ValidInquiryStatus(status) {
		return nil, fmt.Errorf("%w: estado de ofício %q", domain.ErrInvalidInput, status)
	}

	var out *dto.InquiryResponse
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		inq, err := r.Inquiries().GetByID(id)
		if err != nil {
			return err
		}
		if inq == nil {
			return fmt.Errorf("%w: ofício %s", domain.ErrNotFound, id)
		}

		step := transition{from: inq.Status, to: status}
		switch {
		case actor.IsStaff() && status == entity.InquiryStatusRejected:
			if inq.Terminal() {
				return fmt.Errorf("%w: o ofício %s já está encerrado", domain.ErrInvalidTransition, inq.ID)
			}
			inq.AssignedTo = actor.UserID
		case actor.IsStaff() && staffTransitions[step]:
			inq.AssignedTo = actor.UserID
		case !actor.IsStaff() && inq.ClientID == actor.ClientID && clientTransitions[step]:
			// o cliente não assina o ofício
		default:
			return fmt.Errorf("%w: %s para %s", domain.ErrInvalidTransition, inq.Status, status)
		}

		inq.Status = status
		if err := r.Inquiries().Update(inq); err != nil {
			return err
		}
		if err := uc.announce(r, actor, inq); err != nil {
			return err
		}
		out = toResponse(inq, clientName(r, inq.ClientID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// announce emite as notificações associadas a cada transição: o utilizador
// do cliente recebe sempre o novo estado; um interesse declarado pelo
// próprio cliente avisa ainda o pessoal interno.
func (uc *UseCase) announce(r repository.Repositories, actor authz.Actor, inq *entity.Inquiry) error {
	if !actor.IsStaff() {
		if err := notification.FanOutStaff(r.Users(), r.Notifications(),
			"Cliente Interessado",
			fmt.Sprintf("O cliente declarou interesse no ofício %s. Pode emitir a nota de aquisição.", inq.ID),
			entity.NotificationSuccess); err != nil {
			return err
		}
	}

	var title, message, typ string
	switch inq.Status {
	case entity.InquiryStatusCatalogSent:
		title, typ = "Catálogo Disponível", entity.NotificationInfo
		message = fmt.Sprintf("O catálogo relativo ao ofício %s já está disponível na sua área de cliente.", inq.ID)
	case entity.InquiryStatusProposalSent:
		title, typ = "Proposta Comercial Enviada", entity.NotificationInfo
		message = fmt.Sprintf("Foi emitida uma proposta comercial para o ofício %s.", inq.ID)
	case entity.InquiryStatusInterested:
		title, typ = "Interesse Registado", entity.NotificationSuccess
		message = fmt.Sprintf("O seu interesse no ofício %s foi registado pelos nossos serviços.", inq.ID)
	case entity.InquiryStatusRejected:
		title, typ = "Ofício Encerrado", entity.NotificationWarning
		message = fmt.Sprintf("O ofício %s foi encerrado sem seguimento comercial.", inq.ID)
	default:
		return nil
	}
	return notification.NotifyClientUser(r.Users(), r.Notifications(), inq.ClientID, title, message, typ)
}

// ConvertToSale fecha o circuito comercial num só passo: a partir de um
// ofício interested emite a nota de aquisição com quantidade unitária e
// pagamento a pronto, aplicando o mesmo ramo stock/rutura de uma venda
// normal. O próprio estado interested dispensa nova verificação do portão.
func (uc *UseCase) ConvertToSale(ctx context.Context, actor authz.Actor, id string) (*dto.SalesOrderResponse, error) {
	var out *dto.SalesOrderResponse
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		inq, err := r.Inquiries().GetByID(id)
		if err != nil {
			return err
		}
		if inq == nil {
			return fmt.Errorf("%w: ofício %s", domain.ErrNotFound, id)
		}
		if inq.Status != entity.InquiryStatusInterested {
			return fmt.Errorf("%w: só ofícios interested podem ser convertidos", domain.ErrPrecondition)
		}
		client, err := r.Clients().GetByID(inq.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, inq.ClientID)
		}
		product, err := r.Products().GetByID(inq.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: produto %s", domain.ErrNotFound, inq.ProductID)
		}

		order := &entity.SalesOrder{
			ID:            newRef("AQ"),
			ClientID:      inq.ClientID,
			ProductID:     inq.ProductID,
			Date:          time.Now(),
			Quantity:      1,
			PaymentMethod: entity.PaymentMethodCash,
			PaymentStatus: entity.PaymentStatusPending,
		}
		if err := fulfillment.Fulfill(r, order, product); err != nil {
			return err
		}
		if err := r.SalesOrders().Create(order); err != nil {
			return err
		}
		out = &dto.SalesOrderResponse{
			ID:            order.ID,
			ClientID:      order.ClientID,
			ClientName:    client.Name,
			ProductID:     order.ProductID,
			ProductName:   product.Name,
			Date:          order.Date,
			Quantity:      order.Quantity,
			Status:        order.Status,
			PaymentMethod: order.PaymentMethod,
			PaymentStatus: order.PaymentStatus,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devolve os ofícios visíveis ao ator: todos para o pessoal interno,
// apenas os próprios para um cliente.
func (uc *UseCase) List(ctx context.Context, actor authz.Actor) ([]dto.InquiryResponse, error) {
	var out []dto.InquiryResponse
	err := uc.tx.View(ctx, func(r repository.Repositories) error {
		var (
			inquiries []*entity.Inquiry
			err       error
		)
		if actor.IsStaff() {
			inquiries, err = r.Inquiries().List()
		} else {
			inquiries, err = r.Inquiries().ListByClient(actor.ClientID)
		}
		if err != nil {
			return err
		}
		out = make([]dto.InquiryResponse, 0, len(inquiries))
		for _, inq := range inquiries {
			out = append(out, *toResponse(inq, clientName(r, inq.ClientID)))
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

func toResponse(inq *entity.Inquiry, clientName string) *dto.InquiryResponse {
	return &dto.InquiryResponse{
		ID:            inq.ID,
		ClientID:      inq.ClientID,
		ClientName:    clientName,
		ProductID:     inq.ProductID,
		Date:          inq.Date,
		EquipmentType: inq.EquipmentType,
		Details:       inq.Details,
		Status:        inq.Status,
		AssignedTo:    inq.AssignedTo,
	}
}

func newRef(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:6])
}
