package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/panel-api/internal/application/salud"
)

// SaludHandler maneja el tablero de salud de contratos (protegido).
type SaludHandler struct {
	uc *salud.UseCase
}

// NewSaludHandler construye el handler.
func NewSaludHandler(uc *salud.UseCase) *SaludHandler {
	return &SaludHandler{uc: uc}
}

// Tablero godoc
// @Summary      Tablero de salud de contratos
// @Tags         salud
// @Security     Bearer
// @Produce      json
// @Param        nivel  query  string  false  "Filtro: todos|bajo|necesita|medio|excelente"  default(todos)
// @Success      200  {object}  salud.Reporte
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/contratos/salud [get]
func (h *SaludHandler) Tablero(c *fiber.Ctx) error {
	reporte, err := h.uc.Obtener(c.Context(), c.Query("nivel", salud.FiltroTodos))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(reporte)
}

// ReportePDF godoc
// @Summary      Reporte PDF del tablero de salud
// @Tags         salud
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/contratos/salud/reporte [get]
func (h *SaludHandler) ReportePDF(c *fiber.Ctx) error {
	pdf, err := h.uc.ReportePDF(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-salud-contratos.pdf"`)
	return c.Send(pdf)
}
