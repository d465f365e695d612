package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/panel-api/internal/application/dto"
	"github.com/smartstock/panel-api/internal/application/tickets"
	"github.com/smartstock/panel-api/internal/domain/entity"
)

// TicketsHandler maneja los tickets de soporte (protegido).
type TicketsHandler struct {
	uc *tickets.UseCase
}

// NewTicketsHandler construye el handler.
func NewTicketsHandler(uc *tickets.UseCase) *TicketsHandler {
	return &TicketsHandler{uc: uc}
}

// Crear godoc
// @Summary      Abrir un ticket de soporte
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.NuevoTicket  true  "Ticket"
// @Success      201   {object}  entity.Ticket
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tickets [post]
func (h *TicketsHandler) Crear(c *fiber.Ctx) error {
	var in entity.NuevoTicket
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ticket, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// PorCliente godoc
// @Summary      Tickets de un cliente
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del cliente"
// @Success      200  {array}  entity.Ticket
// @Router       /api/tickets/cliente/{id} [get]
func (h *TicketsHandler) PorCliente(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.PorCliente(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Detalle godoc
// @Summary      Ticket con su hilo de respuestas
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del ticket"
// @Success      200  {object}  entity.Ticket
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [get]
func (h *TicketsHandler) Detalle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	ticket, err := h.uc.Detalle(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(ticket)
}

// Responder godoc
// @Summary      Agregar un mensaje al hilo de un ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID del ticket"
// @Param        body  body  dto.ResponderTicketRequest  true  "Mensaje"
// @Success      204
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/respuestas [post]
func (h *TicketsHandler) Responder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.ResponderTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	autor := in.Autor
	if autor == "" {
		autor = GetUsername(c)
	}
	respuesta := entity.NuevaRespuesta{TicketID: id, Autor: autor, Mensaje: in.Mensaje}
	if err := h.uc.Responder(c.Context(), respuesta); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cerrar godoc
// @Summary      Cerrar un ticket
// @Tags         tickets
// @Security     Bearer
// @Param        id  path  int  true  "ID del ticket"
// @Success      204
// @Router       /api/tickets/{id}/cerrar [put]
func (h *TicketsHandler) Cerrar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Cerrar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
