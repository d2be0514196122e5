package repository

import "github.com/megaar/comercial-api/internal/domain/entity"

// NotificationRepository define o porto de persistência para Notification (DIP).
type NotificationRepository interface {
	Append(n *entity.Notification) error
	// ListForUser devolve o feed do utilizador: notificações dirigidas a ele
	// mais as de broadcast, da mais recente para a mais antiga.
	ListForUser(userID string) ([]*entity.Notification, error)
	UnreadCount(userID string) (int, error)
	// MarkRead marca uma notificação como lida. O registo é partilhado: marcar
	// um broadcast como lido afeta todos os leitores (simplificação herdada).
	MarkRead(id, userID string) error
	MarkAllRead(userID string) error
}
