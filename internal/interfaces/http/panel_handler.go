package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/panel-api/internal/application/conexion"
	"github.com/smartstock/panel-api/internal/application/notificaciones"
	"github.com/smartstock/panel-api/internal/application/resumen"
)

// PanelHandler maneja las vistas transversales del panel: resumen general,
// estado de conexión y centro de notificaciones (protegido).
type PanelHandler struct {
	resumen *resumen.UseCase
	prober  *conexion.Prober
	centro  *notificaciones.Centro
}

// NewPanelHandler construye el handler.
func NewPanelHandler(r *resumen.UseCase, p *conexion.Prober, n *notificaciones.Centro) *PanelHandler {
	return &PanelHandler{resumen: r, prober: p, centro: n}
}

// Resumen godoc
// @Summary      Vista general del panel
// @Tags         panel
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  resumen.Vista
// @Router       /api/resumen [get]
func (h *PanelHandler) Resumen(c *fiber.Ctx) error {
	return c.JSON(h.resumen.Obtener(c.Context()))
}

// EstadoConexion godoc
// @Summary      Último estado conocido de la conexión con el backend
// @Tags         panel
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  conexion.Estado
// @Router       /api/conexion [get]
func (h *PanelHandler) EstadoConexion(c *fiber.Ctx) error {
	return c.JSON(h.prober.Estado())
}

// VerificarConexion godoc
// @Summary      Probar la conexión con el backend ahora mismo
// @Tags         panel
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  conexion.Estado
// @Router       /api/conexion/verificar [post]
func (h *PanelHandler) VerificarConexion(c *fiber.Ctx) error {
	return c.JSON(h.prober.VerificarAhora(c.Context()))
}

// Notificaciones godoc
// @Summary      Notificaciones activas en orden de publicación
// @Tags         panel
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  notificaciones.Notificacion
// @Router       /api/notificaciones [get]
func (h *PanelHandler) Notificaciones(c *fiber.Ctx) error {
	return c.JSON(h.centro.Activas())
}

// DescartarNotificacion godoc
// @Summary      Descartar una notificación
// @Tags         panel
// @Security     Bearer
// @Param        id  path  string  true  "ID de la notificación"
// @Success      204
// @Failure      404
// @Router       /api/notificaciones/{id} [delete]
func (h *PanelHandler) DescartarNotificacion(c *fiber.Ctx) error {
	if !h.centro.Descartar(c.Params("id")) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
