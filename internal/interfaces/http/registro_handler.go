package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/panel-api/internal/application/dto"
	"github.com/smartstock/panel-api/internal/application/registro"
)

// RegistroHandler maneja el alta de clientes (público).
type RegistroHandler struct {
	uc *registro.UseCase
}

// NewRegistroHandler construye el handler.
func NewRegistroHandler(uc *registro.UseCase) *RegistroHandler {
	return &RegistroHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar un cliente nuevo
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  registro.Solicitud  true  "Formulario de alta"
// @Success      201   {object}  entity.Cliente
// @Failure      400   {object}  registro.ErroresValidacion
// @Router       /api/clientes/registro [post]
func (h *RegistroHandler) Registrar(c *fiber.Ctx) error {
	var in registro.Solicitud
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		// El formulario inválido devuelve la lista completa de problemas.
		var errs *registro.ErroresValidacion
		if errors.As(err, &errs) {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}
