package dto

import "time"

// NotifyRequest entrada para emitir uma notificação diretamente.
// Target é um id de utilizador ou "all" para broadcast.
type NotifyRequest struct {
	Target  string `json:"target" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// NotificationResponse saída de uma notificação do feed.
type NotificationResponse struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
	Type    string    `json:"type"`
}

// UnreadCountResponse contagem de notificações por ler.
type UnreadCountResponse struct {
	Count int `json:"count"`
}
