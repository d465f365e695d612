package envios_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/panel-api/internal/application/envios"
	"github.com/smartstock/panel-api/internal/domain"
	"github.com/smartstock/panel-api/internal/domain/entity"
)

type apiFalsa struct {
	pendientes []entity.Pedido
	pool       []entity.Repartidor

	// pedido -> repartidor asignado, en orden de creación
	creados []entity.NuevoEnvio
	// pedidos cuya creación debe fallar
	fallaPedido map[int]bool
}

func (a *apiFalsa) CrearEnvio(_ context.Context, in entity.NuevoEnvio) (*entity.Envio, error) {
	if a.fallaPedido[in.PedidoID] {
		return nil, errors.New("backend: pedido ya tiene envío")
	}
	a.creados = append(a.creados, in)
	return &entity.Envio{
		ID:           len(a.creados),
		PedidoID:     in.PedidoID,
		RepartidorID: in.RepartidorID,
		TrackingCode: fmt.Sprintf("TRK-%03d", len(a.creados)),
		Status:       entity.EnvioPendiente,
	}, nil
}

func (a *apiFalsa) EnviosActivos(context.Context) ([]entity.Envio, error) { return nil, nil }

func (a *apiFalsa) Tracking(_ context.Context, code string) (*entity.Envio, error) {
	return &entity.Envio{TrackingCode: code}, nil
}

func (a *apiFalsa) ActualizarUbicacion(context.Context, int, entity.Ubicacion) error { return nil }

func (a *apiFalsa) MarcarEntregado(context.Context, int, string) error { return nil }

func (a *apiFalsa) PedidosPendientesEnvio(context.Context) ([]entity.Pedido, error) {
	return a.pendientes, nil
}

func (a *apiFalsa) RepartidoresDisponibles(context.Context) ([]entity.Repartidor, error) {
	return a.pool, nil
}

type notificadorFalso struct {
	exitos  []string
	errores []string
}

func (n *notificadorFalso) Exito(m string) string {
	n.exitos = append(n.exitos, m)
	return "id"
}

func (n *notificadorFalso) Error(m string) string {
	n.errores = append(n.errores, m)
	return "id"
}

func pedidos(n int) []entity.Pedido {
	out := make([]entity.Pedido, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, entity.Pedido{ID: i, DireccionEntrega: fmt.Sprintf("Calle %d", i)})
	}
	return out
}

func TestCrearMasivoAsignacionRotativa(t *testing.T) {
	api := &apiFalsa{
		pendientes: pedidos(5),
		pool: []entity.Repartidor{
			{ID: 10}, {ID: 20}, {ID: 30},
		},
	}
	ntf := &notificadorFalso{}
	uc := envios.NewUseCase(api, ntf)

	res, err := uc.CrearMasivo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, envios.Resultado{Exitosos: 5, Fallidos: 0}, res)

	// El cursor envuelve sobre el pool: 10, 20, 30, 10, 20.
	require.Len(t, api.creados, 5)
	asignados := make([]int, 0, 5)
	for _, in := range api.creados {
		asignados = append(asignados, in.RepartidorID)
	}
	assert.Equal(t, []int{10, 20, 30, 10, 20}, asignados)
}

func TestCrearMasivoFalloNoAvanzaCursor(t *testing.T) {
	api := &apiFalsa{
		pendientes:  pedidos(4),
		pool:        []entity.Repartidor{{ID: 10}, {ID: 20}},
		fallaPedido: map[int]bool{2: true},
	}
	ntf := &notificadorFalso{}
	uc := envios.NewUseCase(api, ntf)

	res, err := uc.CrearMasivo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, envios.Resultado{Exitosos: 3, Fallidos: 1}, res)

	// El cursor avanza solo con éxitos: el pedido 2 falla en 20 y el
	// pedido 3 vuelve a intentarse con 20.
	asignados := make([]int, 0, 3)
	for _, in := range api.creados {
		asignados = append(asignados, in.RepartidorID)
	}
	assert.Equal(t, []int{10, 20, 10}, asignados)

	assert.Len(t, ntf.exitos, 1)
	assert.Len(t, ntf.errores, 1)
}

func TestCrearMasivoPoolVacio(t *testing.T) {
	api := &apiFalsa{pendientes: pedidos(3)}
	ntf := &notificadorFalso{}
	uc := envios.NewUseCase(api, ntf)

	res, err := uc.CrearMasivo(context.Background())
	require.NoError(t, err)

	// Sin repartidores cada pedido cuenta como fallido y el backend no
	// recibe ninguna creación.
	assert.Equal(t, envios.Resultado{Exitosos: 0, Fallidos: 3}, res)
	assert.Empty(t, api.creados)
	assert.Empty(t, ntf.exitos)
	assert.Len(t, ntf.errores, 1)
}

func TestCrearMasivoSinPendientes(t *testing.T) {
	api := &apiFalsa{pool: []entity.Repartidor{{ID: 10}}}
	uc := envios.NewUseCase(api, &notificadorFalso{})

	_, err := uc.CrearMasivo(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrearMasivoUbicacionInicialAlmacen(t *testing.T) {
	api := &apiFalsa{
		pendientes: pedidos(1),
		pool:       []entity.Repartidor{{ID: 10}},
	}
	uc := envios.NewUseCase(api, &notificadorFalso{})

	_, err := uc.CrearMasivo(context.Background())
	require.NoError(t, err)
	require.Len(t, api.creados, 1)
	assert.InDelta(t, -33.4489, api.creados[0].UbicacionActual.Lat, 0.00001)
	assert.InDelta(t, -70.6693, api.creados[0].UbicacionActual.Lng, 0.00001)
}

func TestCrearRequiereRepartidor(t *testing.T) {
	uc := envios.NewUseCase(&apiFalsa{}, &notificadorFalso{})
	_, err := uc.Crear(context.Background(), entity.Pedido{ID: 1}, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTrackingCodigoVacio(t *testing.T) {
	uc := envios.NewUseCase(&apiFalsa{}, &notificadorFalso{})
	_, err := uc.Tracking(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMarcarEntregadoReceptorRequerido(t *testing.T) {
	uc := envios.NewUseCase(&apiFalsa{}, &notificadorFalso{})
	err := uc.MarcarEntregado(context.Background(), 1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
