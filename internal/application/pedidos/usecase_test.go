package pedidos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/panel-api/internal/application/pedidos"
	"github.com/smartstock/panel-api/internal/domain"
	"github.com/smartstock/panel-api/internal/domain/entity"
)

// apiFalsa implementación en memoria del puerto de pedidos.
type apiFalsa struct {
	validaciones  int
	creaciones    []entity.NuevoPedido
	verdicto      entity.VerdictoValidacion
	errValidar    error
	fallaContrato map[int]error // contratoID -> error al crear
	pedidos       []entity.Pedido
}

func (f *apiFalsa) Validar(_ context.Context, contratoID, cantidad int) (*entity.VerdictoValidacion, error) {
	f.validaciones++
	if f.errValidar != nil {
		return nil, f.errValidar
	}
	v := f.verdicto
	return &v, nil
}

func (f *apiFalsa) Crear(_ context.Context, in entity.NuevoPedido) (*entity.Pedido, error) {
	if err, ok := f.fallaContrato[in.ContratoID]; ok {
		return nil, err
	}
	f.creaciones = append(f.creaciones, in)
	return &entity.Pedido{ID: len(f.creaciones), ContratoID: in.ContratoID}, nil
}

func (f *apiFalsa) Listar(_ context.Context) ([]entity.Pedido, error) { return f.pedidos, nil }

func (f *apiFalsa) Aprobar(_ context.Context, _ int, _ string) error { return nil }

func (f *apiFalsa) Rechazar(_ context.Context, _ int, _ string) error { return nil }

// notificadorFalso registra los mensajes publicados.
type notificadorFalso struct {
	exitos, errores []string
}

func (n *notificadorFalso) Exito(m string) string {
	n.exitos = append(n.exitos, m)
	return "id"
}

func (n *notificadorFalso) Error(m string) string {
	n.errores = append(n.errores, m)
	return "id"
}

const rfcValido = "ABC123456XYZ"

func lineaAprobada(contratoID, cantidad int) *pedidos.Linea {
	return &pedidos.Linea{
		ContratoID: contratoID,
		ClienteID:  1,
		ProductoID: contratoID,
		Cantidad:   cantidad,
		Estado:     pedidos.LineaAprobada,
	}
}

func TestValidarLinea_CantidadInvalidaNoTocaBackend(t *testing.T) {
	api := &apiFalsa{}
	uc := pedidos.NewUseCase(api, &notificadorFalso{})

	for _, cantidad := range []int{0, -3} {
		linea := &pedidos.Linea{ContratoID: 1, Cantidad: cantidad}
		err := uc.ValidarLinea(context.Background(), linea)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, pedidos.LineaSinValidar, linea.Estado)
	}
	assert.Zero(t, api.validaciones, "el error local no genera llamada al backend")
}

func TestValidarLinea_SinContratoNoTocaBackend(t *testing.T) {
	api := &apiFalsa{}
	uc := pedidos.NewUseCase(api, &notificadorFalso{})

	linea := &pedidos.Linea{ContratoID: 0, Cantidad: 5}
	err := uc.ValidarLinea(context.Background(), linea)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, api.validaciones)
}

func TestValidarLinea_GuardaVerdicto(t *testing.T) {
	api := &apiFalsa{verdicto: entity.VerdictoValidacion{PuedeAprobar: true, Razon: "uso suficiente", TarjetasPermitidas: 40}}
	uc := pedidos.NewUseCase(api, &notificadorFalso{})

	linea := &pedidos.Linea{ContratoID: 3, Cantidad: 10}
	require.NoError(t, uc.ValidarLinea(context.Background(), linea))
	assert.Equal(t, pedidos.LineaAprobada, linea.Estado)
	require.NotNil(t, linea.Verdicto)
	assert.Equal(t, 40, linea.Verdicto.TarjetasPermitidas)

	api.verdicto = entity.VerdictoValidacion{PuedeAprobar: false, Razon: "uso bajo el 70%"}
	rechazada := &pedidos.Linea{ContratoID: 4, Cantidad: 10}
	require.NoError(t, uc.ValidarLinea(context.Background(), rechazada))
	assert.Equal(t, pedidos.LineaRechazada, rechazada.Estado)
}

func TestConfirmar_SoloLineasAprobadas(t *testing.T) {
	api := &apiFalsa{}
	uc := pedidos.NewUseCase(api, &notificadorFalso{})

	lineas := []*pedidos.Linea{
		lineaAprobada(1, 10),
		{ContratoID: 2, Cantidad: 5, Estado: pedidos.LineaRechazada},
		lineaAprobada(3, 7),
		{ContratoID: 4, Cantidad: 2, Estado: pedidos.LineaSinValidar},
	}

	res, err := uc.Confirmar(context.Background(), rfcValido, lineas)
	require.NoError(t, err)

	// De N=4 líneas solo K=2 aprobadas: exactamente K creaciones.
	assert.Equal(t, pedidos.Resultado{Exitosos: 2, Fallidos: 0}, res)
	require.Len(t, api.creaciones, 2)
	assert.Equal(t, 1, api.creaciones[0].ContratoID)
	assert.Equal(t, 3, api.creaciones[1].ContratoID)
	assert.Equal(t, rfcValido, api.creaciones[0].RFC)
}

func TestConfirmar_FalloAisladoNoAbortaElLote(t *testing.T) {
	api := &apiFalsa{
		fallaContrato: map[int]error{2: errors.New("cuota de contrato insuficiente")},
	}
	ntf := &notificadorFalso{}
	uc := pedidos.NewUseCase(api, ntf)

	lineas := []*pedidos.Linea{lineaAprobada(1, 5), lineaAprobada(2, 5), lineaAprobada(3, 5)}

	res, err := uc.Confirmar(context.Background(), rfcValido, lineas)
	require.NoError(t, err)

	// El fallo del item 2 no impide intentar el item 3.
	assert.Equal(t, pedidos.Resultado{Exitosos: 2, Fallidos: 1}, res)
	require.Len(t, api.creaciones, 2)
	assert.Equal(t, 3, api.creaciones[1].ContratoID)

	assert.Equal(t, pedidos.LineaEnviada, lineas[0].Estado)
	assert.Equal(t, pedidos.LineaFalloEnvio, lineas[1].Estado)
	assert.Contains(t, lineas[1].ErrorEnvio, "cuota")
	assert.Equal(t, pedidos.LineaEnviada, lineas[2].Estado)

	// Una notificación agregada de éxitos y una de fallos.
	require.Len(t, ntf.exitos, 1)
	assert.Contains(t, ntf.exitos[0], "2 pedido(s)")
	require.Len(t, ntf.errores, 1)
	assert.Contains(t, ntf.errores[0], "1 pedido(s)")
}

func TestConfirmar_SinFallosNoNotificaError(t *testing.T) {
	ntf := &notificadorFalso{}
	uc := pedidos.NewUseCase(&apiFalsa{}, ntf)

	_, err := uc.Confirmar(context.Background(), rfcValido, []*pedidos.Linea{lineaAprobada(1, 5)})
	require.NoError(t, err)
	assert.Len(t, ntf.exitos, 1)
	assert.Empty(t, ntf.errores, "la notificación de fallos solo aparece con fallidos > 0")
}

func TestConfirmar_RFCInvalido(t *testing.T) {
	api := &apiFalsa{}
	uc := pedidos.NewUseCase(api, &notificadorFalso{})

	_, err := uc.Confirmar(context.Background(), "MAL", []*pedidos.Linea{lineaAprobada(1, 5)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, api.creaciones)
}

func TestConfirmar_SinAprobadas(t *testing.T) {
	uc := pedidos.NewUseCase(&apiFalsa{}, &notificadorFalso{})

	_, err := uc.Confirmar(context.Background(), rfcValido, []*pedidos.Linea{
		{ContratoID: 1, Cantidad: 5, Estado: pedidos.LineaRechazada},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFormatoRFCValido(t *testing.T) {
	assert.True(t, pedidos.FormatoRFCValido("ABC123456XYZ"))   // 12, persona moral
	assert.True(t, pedidos.FormatoRFCValido("XAXX010101000"))  // 13, persona física
	assert.True(t, pedidos.FormatoRFCValido(" abc123456xyz ")) // normaliza mayúsculas y espacios
	assert.False(t, pedidos.FormatoRFCValido(""))
	assert.False(t, pedidos.FormatoRFCValido("ABC12345"))
	assert.False(t, pedidos.FormatoRFCValido("ABCD123456XYZ9")) // 14 caracteres
}

func TestListar_ConteosPorEstado(t *testing.T) {
	api := &apiFalsa{pedidos: []entity.Pedido{
		{ID: 1, Estado: entity.PedidoPendiente},
		{ID: 2, Estado: entity.PedidoAprobado},
		{ID: 3, Estado: entity.PedidoPendiente},
		{ID: 4, Estado: entity.PedidoRechazado},
		{ID: 5, Estado: entity.PedidoCompletado},
	}}
	uc := pedidos.NewUseCase(api, &notificadorFalso{})

	listado, err := uc.Listar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pedidos.Conteos{Pendientes: 2, Aprobados: 1, Rechazados: 1}, listado.Conteos)
	assert.Len(t, listado.Pedidos, 5)
}

func TestRechazar_RazonRequerida(t *testing.T) {
	uc := pedidos.NewUseCase(&apiFalsa{}, &notificadorFalso{})
	err := uc.Rechazar(context.Background(), 1, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
