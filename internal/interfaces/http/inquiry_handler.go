package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/application/inquiry"
)

// InquiryHandler trata os pedidos HTTP do ciclo de vida dos ofícios.
type InquiryHandler struct {
	uc *inquiry.UseCase
}

// NewInquiryHandler constrói o handler.
func NewInquiryHandler(uc *inquiry.UseCase) *InquiryHandler {
	return &InquiryHandler{uc: uc}
}

// Create godoc
// @Summary      Registar ofício de consulta
// @Tags         inquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInquiryRequest  true  "Dados do ofício"
// @Success      201   {object}  dto.InquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inquiries [post]
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Avançar o estado de um ofício
// @Tags         inquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do ofício"
// @Param        body  body  dto.UpdateInquiryStatusRequest  true  "Novo estado"
// @Success      200   {object}  dto.InquiryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inquiries/{id}/status [post]
func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateInquiryStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Context(), GetActor(c), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Convert godoc
// @Summary      Converter ofício interested em nota de aquisição
// @Tags         inquiries
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do ofício"
// @Success      201  {object}  dto.SalesOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/inquiries/{id}/convert [post]
func (h *InquiryHandler) Convert(c *fiber.Ctx) error {
	out, err := h.uc.ConvertToSale(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ofícios visíveis ao ator
// @Tags         inquiries
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InquiryResponse
// @Router       /api/inquiries [get]
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
