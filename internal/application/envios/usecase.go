// Package envios implementa la gestión de despachos: creación individual,
// creación masiva con asignación rotativa de repartidores y seguimiento por
// código de tracking.
package envios

import (
	"context"
	"fmt"
	"strings"

	"github.com/smartstock/panel-api/internal/domain"
	"github.com/smartstock/panel-api/internal/domain/entity"
	"github.com/smartstock/panel-api/internal/domain/reparto"
)

// Ubicación inicial de los despachos: el almacén central.
var ubicacionAlmacen = entity.Ubicacion{Lat: -33.4489, Lng: -70.6693}

// API puerto hacia los recursos /envios, /repartidores y /pedidos del backend.
type API interface {
	CrearEnvio(ctx context.Context, in entity.NuevoEnvio) (*entity.Envio, error)
	EnviosActivos(ctx context.Context) ([]entity.Envio, error)
	Tracking(ctx context.Context, code string) (*entity.Envio, error)
	ActualizarUbicacion(ctx context.Context, id int, ubicacion entity.Ubicacion) error
	MarcarEntregado(ctx context.Context, id int, receptor string) error
	PedidosPendientesEnvio(ctx context.Context) ([]entity.Pedido, error)
	RepartidoresDisponibles(ctx context.Context) ([]entity.Repartidor, error)
}

// Notificador puerto hacia el centro de notificaciones.
type Notificador interface {
	Exito(mensaje string) string
	Error(mensaje string) string
}

// Resultado conteo acumulado de una creación masiva.
type Resultado struct {
	Exitosos int `json:"exitosos"`
	Fallidos int `json:"fallidos"`
}

// UseCase gestión de envíos.
type UseCase struct {
	api API
	ntf Notificador
}

// NewUseCase construye el caso de uso.
func NewUseCase(api API, ntf Notificador) *UseCase {
	return &UseCase{api: api, ntf: ntf}
}

// Crear despacha un pedido con un repartidor elegido explícitamente.
func (uc *UseCase) Crear(ctx context.Context, pedido entity.Pedido, repartidorID int) (*entity.Envio, error) {
	if repartidorID <= 0 {
		return nil, fmt.Errorf("%w: selecciona un repartidor", domain.ErrInvalidInput)
	}
	destino := pedido.DireccionEntrega
	if destino == "" {
		destino = "Dirección del cliente"
	}
	return uc.api.CrearEnvio(ctx, entity.NuevoEnvio{
		PedidoID:         pedido.ID,
		RepartidorID:     repartidorID,
		DireccionDestino: destino,
		UbicacionActual:  ubicacionAlmacen,
	})
}

// CrearMasivo despacha todos los pedidos pendientes asignando repartidor de
// forma rotativa sobre el pool disponible; el cursor avanza con los envíos
// exitosos y envuelve con módulo sobre el tamaño del pool. Con pool vacío
// cada item cuenta como fallido sin llamar al backend. El recorrido es
// estrictamente secuencial y un fallo individual no detiene el resto.
func (uc *UseCase) CrearMasivo(ctx context.Context) (Resultado, error) {
	pendientes, err := uc.api.PedidosPendientesEnvio(ctx)
	if err != nil {
		return Resultado{}, err
	}
	if len(pendientes) == 0 {
		return Resultado{}, fmt.Errorf("%w: no hay pedidos pendientes para procesar", domain.ErrInvalidInput)
	}
	pool, err := uc.api.RepartidoresDisponibles(ctx)
	if err != nil {
		return Resultado{}, err
	}

	var res Resultado
	for _, pedido := range pendientes {
		repartidor, ok := reparto.Asignar(pool, res.Exitosos)
		if !ok {
			res.Fallidos++
			continue
		}

		destino := pedido.DireccionEntrega
		if destino == "" {
			destino = "Dirección del cliente"
		}
		_, err := uc.api.CrearEnvio(ctx, entity.NuevoEnvio{
			PedidoID:         pedido.ID,
			RepartidorID:     repartidor.ID,
			DireccionDestino: destino,
			UbicacionActual:  ubicacionAlmacen,
		})
		if err != nil {
			res.Fallidos++
			continue
		}
		res.Exitosos++
	}

	if res.Exitosos > 0 {
		uc.ntf.Exito(fmt.Sprintf("Proceso completado: %d envío(s) creados", res.Exitosos))
	}
	if res.Fallidos > 0 {
		uc.ntf.Error(fmt.Sprintf("%d envío(s) fallaron", res.Fallidos))
	}
	return res, nil
}

// Activos devuelve los envíos en curso.
func (uc *UseCase) Activos(ctx context.Context) ([]entity.Envio, error) {
	return uc.api.EnviosActivos(ctx)
}

// Tracking busca un envío por código de seguimiento.
func (uc *UseCase) Tracking(ctx context.Context, code string) (*entity.Envio, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: ingresa un código de tracking", domain.ErrInvalidInput)
	}
	return uc.api.Tracking(ctx, code)
}

// ActualizarUbicacion reporta la posición actual de un envío.
func (uc *UseCase) ActualizarUbicacion(ctx context.Context, id int, ubicacion entity.Ubicacion) error {
	return uc.api.ActualizarUbicacion(ctx, id, ubicacion)
}

// MarcarEntregado cierra el envío indicando quién recibió.
func (uc *UseCase) MarcarEntregado(ctx context.Context, id int, receptor string) error {
	if strings.TrimSpace(receptor) == "" {
		return fmt.Errorf("%w: el nombre del receptor es requerido", domain.ErrInvalidInput)
	}
	return uc.api.MarcarEntregado(ctx, id, receptor)
}
