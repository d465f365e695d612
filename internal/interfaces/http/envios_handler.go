package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/panel-api/internal/application/dto"
	"github.com/smartstock/panel-api/internal/application/envios"
	"github.com/smartstock/panel-api/internal/domain/entity"
)

// EnviosHandler maneja los despachos y su seguimiento (protegido).
type EnviosHandler struct {
	uc *envios.UseCase
}

// NewEnviosHandler construye el handler.
func NewEnviosHandler(uc *envios.UseCase) *EnviosHandler {
	return &EnviosHandler{uc: uc}
}

// Crear godoc
// @Summary      Despachar un pedido con un repartidor elegido
// @Tags         envios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearEnvioRequest  true  "Pedido y repartidor"
// @Success      201   {object}  entity.Envio
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/envios [post]
func (h *EnviosHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearEnvioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pedido := entity.Pedido{ID: in.PedidoID, DireccionEntrega: in.DireccionDestino}
	envio, err := h.uc.Crear(c.Context(), pedido, in.RepartidorID)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(envio)
}

// CrearMasivo godoc
// @Summary      Despachar todos los pedidos pendientes con asignación rotativa
// @Tags         envios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  envios.Resultado
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/envios/masivo [post]
func (h *EnviosHandler) CrearMasivo(c *fiber.Ctx) error {
	res, err := h.uc.CrearMasivo(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(res)
}

// Activos godoc
// @Summary      Envíos en curso
// @Tags         envios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Envio
// @Router       /api/envios/activos [get]
func (h *EnviosHandler) Activos(c *fiber.Ctx) error {
	out, err := h.uc.Activos(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Tracking godoc
// @Summary      Buscar un envío por código de seguimiento
// @Tags         envios
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código de tracking"
// @Success      200   {object}  entity.Envio
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/envios/tracking/{code} [get]
func (h *EnviosHandler) Tracking(c *fiber.Ctx) error {
	envio, err := h.uc.Tracking(c.Context(), c.Params("code"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(envio)
}

// ActualizarUbicacion godoc
// @Summary      Reportar la posición actual de un envío
// @Tags         envios
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID del envío"
// @Param        body  body  entity.Ubicacion  true  "Coordenadas"
// @Success      204
// @Router       /api/envios/{id}/ubicacion [put]
func (h *EnviosHandler) ActualizarUbicacion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in entity.Ubicacion
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ActualizarUbicacion(c.Context(), id, in); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarcarEntregado godoc
// @Summary      Cerrar un envío indicando quién recibió
// @Tags         envios
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID del envío"
// @Param        body  body  dto.EntregarEnvioRequest  true  "Receptor"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/envios/{id}/entregar [put]
func (h *EnviosHandler) MarcarEntregado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.EntregarEnvioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.MarcarEntregado(c.Context(), id, in.Receptor); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
