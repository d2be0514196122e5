package entity

import "time"

// BroadcastTarget é o sentinela de destinatário "todos os utilizadores".
// Os feeds resolvem o broadcast na leitura; não há cópias por utilizador.
const BroadcastTarget = "all"

// Tipos de notificação.
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationSuccess = "success"
)

// Notification é um registo do feed de notificações, dirigido a um
// utilizador ou em broadcast.
type Notification struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId"` // id do destinatário ou BroadcastTarget
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
	Type    string    `json:"type"`
}

// For indica se a notificação pertence ao feed do utilizador dado.
func (n *Notification) For(userID string) bool {
	return n.UserID == userID || n.UserID == BroadcastTarget
}
