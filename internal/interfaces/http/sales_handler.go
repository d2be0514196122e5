package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/application/fulfillment"
)

// SalesHandler trata os pedidos HTTP das notas de aquisição.
type SalesHandler struct {
	uc  *fulfillment.UseCase
	pdf *fulfillment.PDFUseCase
}

// NewSalesHandler constrói o handler.
func NewSalesHandler(uc *fulfillment.UseCase, pdf *fulfillment.PDFUseCase) *SalesHandler {
	return &SalesHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Emitir nota de aquisição
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalesOrderRequest  true  "Dados da venda"
// @Success      201   {object}  dto.SalesOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateOrder(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ConfirmReceipt godoc
// @Summary      Confirmar a receção da encomenda (cliente)
// @Tags         sales
// @Security     Bearer
// @Param        id  path  string  true  "ID da nota"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [post]
func (h *SalesHandler) ConfirmReceipt(c *fiber.Ctx) error {
	if err := h.uc.ConfirmReceipt(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ConfirmPayment godoc
// @Summary      Registar a cobrança de uma nota entregue (staff)
// @Tags         sales
// @Security     Bearer
// @Param        id  path  string  true  "ID da nota"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/payment [post]
func (h *SalesHandler) ConfirmPayment(c *fiber.Ctx) error {
	if err := h.uc.ConfirmPayment(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Descarregar a nota de aquisição em PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID da nota"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pdf [get]
func (h *SalesHandler) PDF(c *fiber.Ctx) error {
	data, err := h.pdf.OrderNote(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="nota-`+c.Params("id")+`.pdf"`)
	return c.Send(data)
}

// List godoc
// @Summary      Listar notas de aquisição visíveis ao ator
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SalesOrderResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
