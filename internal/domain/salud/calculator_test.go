package salud_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/panel-api/internal/domain/entity"
	"github.com/smartstock/panel-api/internal/domain/salud"
)

func pct(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestPorcentajeUso_EmitidasCero(t *testing.T) {
	// Con cero emitidas el uso se define como 0, nunca NaN ni infinito.
	got := salud.PorcentajeUso(0, 0)
	assert.True(t, got.IsZero())

	got = salud.PorcentajeUso(0, 15)
	assert.True(t, got.IsZero())
}

func TestPorcentajeUso_UnDecimal(t *testing.T) {
	casos := []struct {
		emitidas, activas int
		esperado          string
	}{
		{100, 75, "75"},
		{3, 1, "33.3"},
		{3, 2, "66.7"},
		{8, 7, "87.5"},
		{200, 200, "100"},
	}
	for _, c := range casos {
		got := salud.PorcentajeUso(c.emitidas, c.activas)
		assert.True(t, got.Equal(pct(c.esperado)),
			"emitidas=%d activas=%d: esperado %s, obtenido %s", c.emitidas, c.activas, c.esperado, got)
	}
}

func TestClasificar_Cortes(t *testing.T) {
	casos := []struct {
		porcentaje string
		nivel      string
	}{
		{"0", salud.NivelBajo},
		{"29.9", salud.NivelBajo},
		{"30", salud.NivelAtencion}, // corte estricto: 30.0 ya no es Bajo
		{"49.9", salud.NivelAtencion},
		{"50", salud.NivelMedio}, // exactamente 50.0 es Rendimiento Medio
		{"69.9", salud.NivelMedio},
		{"70", salud.NivelExcelente}, // exactamente 70.0 es Excelente
		{"100", salud.NivelExcelente},
	}
	for _, c := range casos {
		assert.Equal(t, c.nivel, salud.Clasificar(pct(c.porcentaje)), "porcentaje %s", c.porcentaje)
	}
}

func TestTarjetasPermitidas(t *testing.T) {
	// Bajo el 70% nunca se autorizan tarjetas adicionales.
	assert.Equal(t, 0, salud.TarjetasPermitidas(pct("69.9"), 500, 100))
	assert.Equal(t, 0, salud.TarjetasPermitidas(pct("0"), 500, 100))

	// Desde el 70%: max(0, limite - emitidas).
	assert.Equal(t, 400, salud.TarjetasPermitidas(pct("70"), 500, 100))
	assert.Equal(t, 0, salud.TarjetasPermitidas(pct("95"), 100, 150), "nunca negativo")
}

func TestEvaluar_ContratoConUsoAlto(t *testing.T) {
	c := entity.Contrato{
		ID:               7,
		ClienteNombre:    "Acme SA",
		ProductoNombre:   "Tarjeta Oro",
		TarjetasEmitidas: 100,
		TarjetasActivas:  75,
		LimiteContrato:   180,
	}
	got := salud.Evaluar(c)
	assert.Equal(t, 7, got.ContratoID)
	assert.True(t, got.PorcentajeUso.Equal(pct("75")))
	assert.Equal(t, salud.NivelExcelente, got.NivelSalud)
	assert.Equal(t, 80, got.TarjetasPermitidas)
}

func TestEvaluar_ContratoSinEmisiones(t *testing.T) {
	got := salud.Evaluar(entity.Contrato{ID: 1, LimiteContrato: 50})
	assert.True(t, got.PorcentajeUso.IsZero())
	assert.Equal(t, salud.NivelBajo, got.NivelSalud)
	assert.Equal(t, 0, got.TarjetasPermitidas)
}

func TestEvaluarTodos_EntradaVacia(t *testing.T) {
	got := salud.EvaluarTodos(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEvaluarTodos_PreservaOrden(t *testing.T) {
	contratos := []entity.Contrato{
		{ID: 3, TarjetasEmitidas: 10, TarjetasActivas: 1},
		{ID: 1, TarjetasEmitidas: 10, TarjetasActivas: 8},
	}
	got := salud.EvaluarTodos(contratos)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ContratoID)
	assert.Equal(t, 1, got[1].ContratoID)
}
