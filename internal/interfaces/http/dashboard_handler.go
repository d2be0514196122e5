package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/megaar/comercial-api/internal/application/analytics"
)

// DashboardHandler expõe o painel operacional.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Painel do ator: operacional para staff, atividade própria para cliente
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	actor := GetActor(c)
	if actor.IsStaff() {
		out, err := h.uc.StaffSummary(c.Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.ClientSummary(c.Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
