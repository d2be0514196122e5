package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/megaar/comercial-api/internal/application/catalog"
)

// CatalogHandler expõe o catálogo personalizado.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler constrói o handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Catálogo visível ao ator
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.VisibleFor(c.Context(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
