package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/panel-api/internal/application/alertas"
	"github.com/smartstock/panel-api/internal/application/auth"
	"github.com/smartstock/panel-api/internal/application/catalogo"
	"github.com/smartstock/panel-api/internal/application/conexion"
	"github.com/smartstock/panel-api/internal/application/envios"
	"github.com/smartstock/panel-api/internal/application/inventario"
	"github.com/smartstock/panel-api/internal/application/notificaciones"
	"github.com/smartstock/panel-api/internal/application/pedidos"
	"github.com/smartstock/panel-api/internal/application/registro"
	"github.com/smartstock/panel-api/internal/application/resumen"
	"github.com/smartstock/panel-api/internal/application/salud"
	"github.com/smartstock/panel-api/internal/application/tickets"
	"github.com/smartstock/panel-api/internal/application/validacion"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	SaludUC      *salud.UseCase
	PedidosUC    *pedidos.UseCase
	EnviosUC     *envios.UseCase
	AlertasUC    *alertas.UseCase
	TicketsUC    *tickets.UseCase
	InventarioUC *inventario.UseCase
	CatalogoUC   *catalogo.UseCase
	RegistroUC   *registro.UseCase
	ValidacionUC *validacion.UseCase
	ResumenUC    *resumen.UseCase
	Prober       *conexion.Prober
	Centro       *notificaciones.Centro
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth y registro (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	registroHandler := NewRegistroHandler(deps.RegistroUC)
	api.Post("/clientes/registro", registroHandler.Registrar)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(auth.RolAdmin)

	protected.Post("/auth/logout", authHandler.Logout)

	// Salud de contratos
	saludHandler := NewSaludHandler(deps.SaludUC)
	protected.Get("/contratos/salud", saludHandler.Tablero)
	protected.Get("/contratos/salud/reporte", saludHandler.ReportePDF)

	// Pedidos
	pedidosHandler := NewPedidosHandler(deps.PedidosUC)
	protected.Get("/pedidos", pedidosHandler.Listar)
	protected.Post("/pedidos/validar", pedidosHandler.Validar)
	protected.Post("/pedidos/confirmar", pedidosHandler.Confirmar)
	protected.Put("/pedidos/:id/aprobar", admin, pedidosHandler.Aprobar)
	protected.Put("/pedidos/:id/rechazar", admin, pedidosHandler.Rechazar)

	// Envíos
	enviosHandler := NewEnviosHandler(deps.EnviosUC)
	protected.Post("/envios", enviosHandler.Crear)
	protected.Post("/envios/masivo", admin, enviosHandler.CrearMasivo)
	protected.Get("/envios/activos", enviosHandler.Activos)
	protected.Get("/envios/tracking/:code", enviosHandler.Tracking)
	protected.Put("/envios/:id/ubicacion", enviosHandler.ActualizarUbicacion)
	protected.Put("/envios/:id/entregar", enviosHandler.MarcarEntregado)

	// Alertas
	alertasHandler := NewAlertasHandler(deps.AlertasUC)
	protected.Get("/alertas", alertasHandler.Listar)
	protected.Put("/alertas/:id/resolver", alertasHandler.Resolver)
	protected.Post("/alertas/generar", admin, alertasHandler.Generar)

	// Tickets de soporte
	ticketsHandler := NewTicketsHandler(deps.TicketsUC)
	protected.Post("/tickets", ticketsHandler.Crear)
	protected.Get("/tickets/cliente/:id", ticketsHandler.PorCliente)
	protected.Get("/tickets/:id", ticketsHandler.Detalle)
	protected.Post("/tickets/:id/respuestas", ticketsHandler.Responder)
	protected.Put("/tickets/:id/cerrar", ticketsHandler.Cerrar)

	// Inventario
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	protected.Get("/inventario/estados", inventarioHandler.Estados)
	protected.Get("/inventario/producto/:id", inventarioHandler.PorProducto)
	protected.Get("/inventario/resumen", inventarioHandler.Resumen)
	protected.Get("/inventario/movimientos", inventarioHandler.Movimientos)

	// Catálogos
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	protected.Get("/clientes", catalogoHandler.Clientes)
	protected.Get("/clientes/:id", catalogoHandler.Cliente)
	protected.Get("/clientes/:id/productos-contratados", catalogoHandler.ProductosConContrato)
	protected.Get("/productos", catalogoHandler.Productos)

	// Validación de nóminas
	validacionHandler := NewValidacionHandler(deps.ValidacionUC)
	protected.Get("/validacion/plantilla", validacionHandler.Plantilla)
	protected.Post("/validacion/nomina", validacionHandler.ValidarNomina)

	// Panel: resumen, conexión y notificaciones
	panelHandler := NewPanelHandler(deps.ResumenUC, deps.Prober, deps.Centro)
	protected.Get("/resumen", panelHandler.Resumen)
	protected.Get("/conexion", panelHandler.EstadoConexion)
	protected.Post("/conexion/verificar", panelHandler.VerificarConexion)
	protected.Get("/notificaciones", panelHandler.Notificaciones)
	protected.Delete("/notificaciones/:id", panelHandler.DescartarNotificacion)
}
