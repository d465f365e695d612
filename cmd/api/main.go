package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

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
	appsalud "github.com/smartstock/panel-api/internal/application/salud"
	"github.com/smartstock/panel-api/internal/application/tickets"
	"github.com/smartstock/panel-api/internal/application/validacion"
	"github.com/smartstock/panel-api/internal/domain/entity"
	"github.com/smartstock/panel-api/internal/infrastructure/backend"
	infrapdf "github.com/smartstock/panel-api/internal/infrastructure/pdf"
	httpRouter "github.com/smartstock/panel-api/internal/interfaces/http"
	"github.com/smartstock/panel-api/pkg/config"
	"github.com/smartstock/panel-api/pkg/logger"
)

// enviosBackend junta los tres recursos del backend que alimentan el flujo de
// envíos: /envios, /pedidos y /repartidores.
type enviosBackend struct {
	envios       *backend.EnviosAPI
	pedidos      *backend.PedidosAPI
	repartidores *backend.RepartidoresAPI
}

func (b enviosBackend) CrearEnvio(ctx context.Context, in entity.NuevoEnvio) (*entity.Envio, error) {
	return b.envios.Crear(ctx, in)
}

func (b enviosBackend) EnviosActivos(ctx context.Context) ([]entity.Envio, error) {
	return b.envios.Activos(ctx)
}

func (b enviosBackend) Tracking(ctx context.Context, code string) (*entity.Envio, error) {
	return b.envios.Tracking(ctx, code)
}

func (b enviosBackend) ActualizarUbicacion(ctx context.Context, id int, ubicacion entity.Ubicacion) error {
	return b.envios.ActualizarUbicacion(ctx, id, ubicacion)
}

func (b enviosBackend) MarcarEntregado(ctx context.Context, id int, receptor string) error {
	return b.envios.MarcarEntregado(ctx, id, receptor)
}

func (b enviosBackend) PedidosPendientesEnvio(ctx context.Context) ([]entity.Pedido, error) {
	return b.pedidos.PendientesEnvio(ctx)
}

func (b enviosBackend) RepartidoresDisponibles(ctx context.Context) ([]entity.Repartidor, error) {
	return b.repartidores.Disponibles(ctx)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	// Cliente hacia el backend REST de SmartStock
	cliente := backend.New(backend.Config{
		BaseURL:      cfg.Backend.BaseURL,
		Timeout:      cfg.Backend.Timeout(),
		ProbeTimeout: cfg.Backend.ProbeTimeout(),
	}, log.Componente("backend"))

	clientesAPI := backend.NewClientesAPI(cliente)
	productosAPI := backend.NewProductosAPI(cliente)
	contratosAPI := backend.NewContratosAPI(cliente)
	pedidosAPI := backend.NewPedidosAPI(cliente)
	enviosAPI := backend.NewEnviosAPI(cliente)
	repartidoresAPI := backend.NewRepartidoresAPI(cliente)
	alertasAPI := backend.NewAlertasAPI(cliente)
	ticketsAPI := backend.NewTicketsAPI(cliente)
	inventarioAPI := backend.NewInventarioAPI(cliente)
	validacionAPI := backend.NewValidacionAPI(cliente)

	// Centro de notificaciones y verificador de conexión
	centro := notificaciones.NewCentro()
	prober := conexion.NewProber(cliente.Ping, cfg.Backend.ProbeInterval(), log.Componente("conexion"))
	prober.Iniciar()
	defer prober.Detener()

	// Casos de uso
	authUC := auth.NewUseCase(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	saludUC := appsalud.NewUseCase(contratosAPI, infrapdf.NewReporteSalud(), log)
	pedidosUC := pedidos.NewUseCase(pedidosAPI, centro)
	enviosUC := envios.NewUseCase(enviosBackend{
		envios:       enviosAPI,
		pedidos:      pedidosAPI,
		repartidores: repartidoresAPI,
	}, centro)
	alertasUC := alertas.NewUseCase(alertasAPI, centro)
	ticketsUC := tickets.NewUseCase(ticketsAPI, centro)
	inventarioUC := inventario.NewUseCase(inventarioAPI)
	catalogoUC := catalogo.NewUseCase(clientesAPI, productosAPI, contratosAPI)
	registroUC := registro.NewUseCase(clientesAPI)
	validacionUC := validacion.NewUseCase(validacionAPI)
	resumenUC := resumen.NewUseCase(contratosAPI, inventarioAPI, alertasAPI, pedidosAPI, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SmartStock Panel API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		SaludUC:      saludUC,
		PedidosUC:    pedidosUC,
		EnviosUC:     enviosUC,
		AlertasUC:    alertasUC,
		TicketsUC:    ticketsUC,
		InventarioUC: inventarioUC,
		CatalogoUC:   catalogoUC,
		RegistroUC:   registroUC,
		ValidacionUC: validacionUC,
		ResumenUC:    resumenUC,
		Prober:       prober,
		Centro:       centro,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
