package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/panel-api/internal/application/dto"
	"github.com/smartstock/panel-api/internal/application/pedidos"
)

// PedidosHandler maneja el flujo de pedidos por lote (protegido).
type PedidosHandler struct {
	uc *pedidos.UseCase
}

// NewPedidosHandler construye el handler.
func NewPedidosHandler(uc *pedidos.UseCase) *PedidosHandler {
	return &PedidosHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar pedidos con conteos por estado
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  pedidos.Listado
// @Router       /api/pedidos [get]
func (h *PedidosHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Validar godoc
// @Summary      Pre-validar un lote de líneas sin crear pedidos
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidarPedidosRequest  true  "Líneas a validar"
// @Success      200   {object}  dto.ValidarPedidosResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pedidos/validar [post]
func (h *PedidosHandler) Validar(c *fiber.Ctx) error {
	var in dto.ValidarPedidosRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Lineas) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "agrega al menos una línea"})
	}

	// El usuario revisa los veredictos antes de confirmar, así que un fallo
	// en una línea no aborta el lote: se reporta en su propia línea.
	out := dto.ValidarPedidosResponse{Lineas: make([]dto.LineaValidadaResponse, 0, len(in.Lineas))}
	for _, l := range in.Lineas {
		linea := &pedidos.Linea{
			ContratoID: l.ContratoID,
			ClienteID:  l.ClienteID,
			ProductoID: l.ProductoID,
			Cantidad:   l.Cantidad,
		}
		lr := dto.LineaValidadaResponse{ContratoID: l.ContratoID, Cantidad: l.Cantidad}
		if err := h.uc.ValidarLinea(c.Context(), linea); err != nil {
			lr.Estado = string(linea.Estado)
			lr.Error = err.Error()
			out.Rechazadas++
			out.Lineas = append(out.Lineas, lr)
			continue
		}
		lr.Estado = string(linea.Estado)
		if linea.Verdicto != nil {
			lr.PuedeAprobar = linea.Verdicto.PuedeAprobar
			lr.Razon = linea.Verdicto.Razon
			lr.TarjetasPermitidas = linea.Verdicto.TarjetasPermitidas
		}
		if linea.Estado == pedidos.LineaAprobada {
			out.Aprobadas++
		} else {
			out.Rechazadas++
		}
		out.Lineas = append(out.Lineas, lr)
	}
	return c.JSON(out)
}

// Confirmar godoc
// @Summary      Validar y confirmar un lote de pedidos
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmarPedidosRequest  true  "RFC y líneas"
// @Success      200   {object}  dto.ConfirmarPedidosResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pedidos/confirmar [post]
func (h *PedidosHandler) Confirmar(c *fiber.Ctx) error {
	var in dto.ConfirmarPedidosRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Lineas) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "agrega al menos una línea"})
	}

	// Fase 1: cada línea se valida contra su contrato. Las rechazadas se
	// quedan fuera del lote sin abortar el resto.
	lineas := make([]*pedidos.Linea, 0, len(in.Lineas))
	for _, l := range in.Lineas {
		linea := &pedidos.Linea{
			ContratoID: l.ContratoID,
			ClienteID:  l.ClienteID,
			ProductoID: l.ProductoID,
			Cantidad:   l.Cantidad,
		}
		if err := h.uc.ValidarLinea(c.Context(), linea); err != nil {
			return responderError(c, err)
		}
		lineas = append(lineas, linea)
	}

	// Fase 2: solo las aprobadas se crean.
	res, err := h.uc.Confirmar(c.Context(), in.RFC, lineas)
	if err != nil {
		return responderError(c, err)
	}

	out := dto.ConfirmarPedidosResponse{Exitosos: res.Exitosos, Fallidos: res.Fallidos}
	for _, l := range lineas {
		lr := dto.LineaPedidoResponse{
			ContratoID: l.ContratoID,
			Cantidad:   l.Cantidad,
			Estado:     string(l.Estado),
			Error:      l.ErrorEnvio,
		}
		if l.Verdicto != nil && !l.Verdicto.PuedeAprobar {
			lr.Razon = l.Verdicto.Razon
		}
		out.Lineas = append(out.Lineas, lr)
	}
	return c.JSON(out)
}

// Aprobar godoc
// @Summary      Aprobar un pedido pendiente
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del pedido"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/aprobar [put]
func (h *PedidosHandler) Aprobar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Aprobar(c.Context(), id, GetUsername(c)); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Rechazar godoc
// @Summary      Rechazar un pedido pendiente con una razón
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.RechazarPedidoRequest  true  "Razón del rechazo"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/rechazar [put]
func (h *PedidosHandler) Rechazar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.RechazarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Rechazar(c.Context(), id, in.Razon); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
