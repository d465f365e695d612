package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/panel-api/internal/application/alertas"
	"github.com/smartstock/panel-api/internal/application/dto"
)

// AlertasHandler maneja las alertas de stock (protegido).
type AlertasHandler struct {
	uc *alertas.UseCase
}

// NewAlertasHandler construye el handler.
func NewAlertasHandler(uc *alertas.UseCase) *AlertasHandler {
	return &AlertasHandler{uc: uc}
}

// Listar godoc
// @Summary      Tablero de alertas con conteos por severidad
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        pendientes  query  bool  false  "Solo alertas no resueltas"
// @Success      200  {object}  alertas.Tablero
// @Router       /api/alertas [get]
func (h *AlertasHandler) Listar(c *fiber.Ctx) error {
	tablero, err := h.uc.Listar(c.Context(), c.QueryBool("pendientes", false))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(tablero)
}

// Resolver godoc
// @Summary      Marcar una alerta como atendida
// @Tags         alertas
// @Security     Bearer
// @Param        id  path  int  true  "ID de la alerta"
// @Success      204
// @Router       /api/alertas/{id}/resolver [put]
func (h *AlertasHandler) Resolver(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Resolver(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Generar godoc
// @Summary      Recalcular alertas de stock
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Alerta
// @Router       /api/alertas/generar [post]
func (h *AlertasHandler) Generar(c *fiber.Ctx) error {
	nuevas, err := h.uc.Generar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(nuevas)
}
