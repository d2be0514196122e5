// Package notification implementa o feed de notificações: registos
// dirigidos a um utilizador ou em broadcast, resolvidos na leitura.
package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/megaar/comercial-api/internal/application/authz"
	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

// Notify acrescenta uma notificação (read=false, data corrente, id gerado)
// ao repositório dado. Também usada dentro das transações dos motores de
// negócio, para que a notificação faça parte da mesma escrita atómica.
func Notify(repo repository.NotificationRepository, target, title, message, typ string) error {
	if typ == "" {
		typ = entity.NotificationInfo
	}
	return repo.Append(&entity.Notification{
		ID:      uuid.New().String(),
		UserID:  target,
		Title:   title,
		Message: message,
		Date:    time.Now(),
		Read:    false,
		Type:    typ,
	})
}

// FanOutStaff emite uma notificação individual para cada utilizador interno.
func FanOutStaff(users repository.UserRepository, repo repository.NotificationRepository, title, message, typ string) error {
	staff, err := users.ListStaff()
	if err != nil {
		return err
	}
	for _, u := range staff {
		if err := Notify(repo, u.ID, title, message, typ); err != nil {
			return err
		}
	}
	return nil
}

// NotifyClientUser emite uma notificação para o utilizador associado ao
// cliente, se existir; sem utilizador associado é um no-op.
func NotifyClientUser(users repository.UserRepository, repo repository.NotificationRepository, clientID, title, message, typ string) error {
	u, err := users.FindByClientID(clientID)
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}
	return Notify(repo, u.ID, title, message, typ)
}

// Dispatcher expõe o feed ao exterior: emissão direta, listagem, contagem
// de não lidas e marcação de leitura.
type Dispatcher struct {
	repo repository.NotificationRepository
}

// NewDispatcher constrói o dispatcher.
func NewDispatcher(repo repository.NotificationRepository) *Dispatcher {
	return &Dispatcher{repo: repo}
}

// Send emite uma notificação direta (target = id de utilizador ou "all").
func (d *Dispatcher) Send(in dto.NotifyRequest) error {
	return Notify(d.repo, in.Target, in.Title, in.Message, in.Type)
}

// FeedFor devolve o feed do ator, broadcasts incluídos, mais recente primeiro.
func (d *Dispatcher) FeedFor(actor authz.Actor) ([]dto.NotificationResponse, error) {
	list, err := d.repo.ListForUser(actor.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationResponse{
			ID: n.ID, UserID: n.UserID, Title: n.Title, Message: n.Message,
			Date: n.Date, Read: n.Read, Type: n.Type,
		})
	}
	return out, nil
}

// UnreadCount conta as notificações por ler do ator.
func (d *Dispatcher) UnreadCount(actor authz.Actor) (int, error) {
	return d.repo.UnreadCount(actor.UserID)
}

// MarkRead marca uma notificação do feed do ator como lida.
func (d *Dispatcher) MarkRead(actor authz.Actor, id string) error {
	return d.repo.MarkRead(id, actor.UserID)
}

// MarkAllRead marca todo o feed do ator como lido.
func (d *Dispatcher) MarkAllRead(actor authz.Actor) error {
	return d.repo.MarkAllRead(actor.UserID)
}
