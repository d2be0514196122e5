package memstore

import (
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementação do porto NotificationRepository sobre o documento.
type NotificationRepo struct {
	src Source
}

// NewNotificationRepository constrói o adaptador. Passar a Store ou uma tx (Source).
func NewNotificationRepository(src Source) *NotificationRepo {
	return &NotificationRepo{src: src}
}

// Append acrescenta a notificação ao topo do feed (mais recente primeiro).
// Um broadcast fica como registo único; é resolvido na leitura.
func (r *NotificationRepo) Append(n *entity.Notification) error {
	return r.src.mutate(func(d *Document) error {
		d.Notifications = append([]entity.Notification{*n}, d.Notifications...)
		return nil
	})
}

// ListForUser devolve o feed do utilizador: dirigidas a ele mais broadcasts.
func (r *NotificationRepo) ListForUser(userID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	err := r.src.view(func(d *Document) error {
		for i := range d.Notifications {
			if d.Notifications[i].For(userID) {
				n := d.Notifications[i]
				out = append(out, &n)
			}
		}
		return nil
	})
	return out, err
}

// UnreadCount conta as notificações por ler no feed do utilizador.
func (r *NotificationRepo) UnreadCount(userID string) (int, error) {
	count := 0
	err := r.src.view(func(d *Document) error {
		for i := range d.Notifications {
			if d.Notifications[i].For(userID) && !d.Notifications[i].Read {
				count++
			}
		}
		return nil
	})
	return count, err
}

// MarkRead marca uma notificação do feed do utilizador como lida.
// Fora do feed (outro destinatário) → ErrNotFound.
func (r *NotificationRepo) MarkRead(id, userID string) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Notifications {
			if d.Notifications[i].ID == id {
				if !d.Notifications[i].For(userID) {
					return domain.ErrNotFound
				}
				d.Notifications[i].Read = true
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// MarkAllRead marca todo o feed do utilizador como lido.
func (r *NotificationRepo) MarkAllRead(userID string) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Notifications {
			if d.Notifications[i].For(userID) {
				d.Notifications[i].Read = true
			}
		}
		return nil
	})
}
