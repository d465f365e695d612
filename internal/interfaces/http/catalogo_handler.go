package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/panel-api/internal/application/catalogo"
	"github.com/smartstock/panel-api/internal/application/dto"
)

// CatalogoHandler maneja los catálogos de consulta (protegido).
type CatalogoHandler struct {
	uc *catalogo.UseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *catalogo.UseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Clientes godoc
// @Summary      Listar clientes
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Cliente
// @Router       /api/clientes [get]
func (h *CatalogoHandler) Clientes(c *fiber.Ctx) error {
	out, err := h.uc.Clientes(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Cliente godoc
// @Summary      Obtener un cliente
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del cliente"
// @Success      200  {object}  entity.Cliente
// @Router       /api/clientes/{id} [get]
func (h *CatalogoHandler) Cliente(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.Cliente(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Productos godoc
// @Summary      Catálogo de productos
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Producto
// @Router       /api/productos [get]
func (h *CatalogoHandler) Productos(c *fiber.Ctx) error {
	out, err := h.uc.Productos(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ProductosConContrato godoc
// @Summary      Productos contratados por un cliente
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del cliente"
// @Success      200  {array}  catalogo.ProductoContratado
// @Router       /api/clientes/{id}/productos-contratados [get]
func (h *CatalogoHandler) ProductosConContrato(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.ProductosConContrato(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
