package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/application/notification"
)

// NotificationHandler trata o feed de notificações.
type NotificationHandler struct {
	d *notification.Dispatcher
}

// NewNotificationHandler constrói o handler.
func NewNotificationHandler(d *notification.Dispatcher) *NotificationHandler {
	return &NotificationHandler{d: d}
}

// List godoc
// @Summary      Feed de notificações do ator
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.d.FeedFor(GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Unread godoc
// @Summary      Contagem de notificações por ler
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UnreadCountResponse
// @Router       /api/notifications/unread-count [get]
func (h *NotificationHandler) Unread(c *fiber.Ctx) error {
	count, err := h.d.UnreadCount(GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.UnreadCountResponse{Count: count})
}

// Send godoc
// @Summary      Emitir uma notificação dirigida ou broadcast (staff)
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.NotifyRequest  true  "Notificação"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/notifications [post]
func (h *NotificationHandler) Send(c *fiber.Ctx) error {
	var in dto.NotifyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Target == "" || in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "target e title são obrigatórios"})
	}
	if err := h.d.Send(in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkRead godoc
// @Summary      Marcar uma notificação como lida
// @Tags         notifications
// @Security     Bearer
// @Param        id  path  string  true  "ID da notificação"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.d.MarkRead(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead godoc
// @Summary      Marcar todas as notificações do feed como lidas
// @Tags         notifications
// @Security     Bearer
// @Success      204
// @Router       /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.d.MarkAllRead(GetActor(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
