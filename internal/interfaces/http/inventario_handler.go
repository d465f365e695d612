package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/panel-api/internal/application/dto"
	"github.com/smartstock/panel-api/internal/application/inventario"
)

// InventarioHandler maneja las consultas de stock (protegido).
type InventarioHandler struct {
	uc *inventario.UseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.UseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Estados godoc
// @Summary      Nivel de stock de todos los productos
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.EstadoInventario
// @Router       /api/inventario/estados [get]
func (h *InventarioHandler) Estados(c *fiber.Ctx) error {
	out, err := h.uc.Estados(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// PorProducto godoc
// @Summary      Estado de inventario de un producto
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  entity.EstadoInventario
// @Router       /api/inventario/producto/{id} [get]
func (h *InventarioHandler) PorProducto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.PorProducto(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Agregado de inventario
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.ResumenInventario
// @Router       /api/inventario/resumen [get]
func (h *InventarioHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Movimientos godoc
// @Summary      Historial de entradas y salidas
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.MovimientoInventario
// @Router       /api/inventario/movimientos [get]
func (h *InventarioHandler) Movimientos(c *fiber.Ctx) error {
	out, err := h.uc.Movimientos(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
