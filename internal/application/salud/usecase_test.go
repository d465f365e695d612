package salud_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/panel-api/internal/application/salud"
	"github.com/smartstock/panel-api/internal/domain/entity"
	dsalud "github.com/smartstock/panel-api/internal/domain/salud"
	"github.com/smartstock/panel-api/pkg/logger"
)

type apiFalsa struct {
	salud      []entity.SaludContrato
	fallaSalud bool

	contratos    []entity.Contrato
	fallaListar  bool
	listarLlamas int
}

func (a *apiFalsa) Salud(context.Context) ([]entity.SaludContrato, error) {
	if a.fallaSalud {
		return nil, errors.New("backend caído")
	}
	return a.salud, nil
}

func (a *apiFalsa) Listar(context.Context) ([]entity.Contrato, error) {
	a.listarLlamas++
	if a.fallaListar {
		return nil, errors.New("backend caído")
	}
	return a.contratos, nil
}

func logSilencioso() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestObtenerEndpointPrimario(t *testing.T) {
	api := &apiFalsa{
		salud: []entity.SaludContrato{
			{ContratoID: 3, NivelSalud: dsalud.NivelExcelente},
			{ContratoID: 1, NivelSalud: dsalud.NivelBajo},
			{ContratoID: 2, NivelSalud: dsalud.NivelMedio},
		},
	}
	uc := salud.NewUseCase(api, nil, logSilencioso())

	rep, err := uc.Obtener(context.Background(), salud.FiltroTodos)
	require.NoError(t, err)

	assert.False(t, rep.ModoAlternativo)
	assert.Zero(t, api.listarLlamas, "con el primario sano no se consulta el listado crudo")

	// Ordenado por contrato_id ascendente.
	require.Len(t, rep.Contratos, 3)
	assert.Equal(t, 1, rep.Contratos[0].ContratoID)
	assert.Equal(t, 2, rep.Contratos[1].ContratoID)
	assert.Equal(t, 3, rep.Contratos[2].ContratoID)

	assert.Equal(t, salud.ResumenNiveles{Total: 3, Excelente: 1, Medio: 1, Bajo: 1}, rep.Resumen)
}

func TestObtenerRespaldoLocal(t *testing.T) {
	api := &apiFalsa{
		fallaSalud: true,
		contratos: []entity.Contrato{
			{ID: 1, ClienteNombre: "Acme", TarjetasEmitidas: 100, TarjetasActivas: 75, LimiteContrato: 180},
			{ID: 2, ClienteNombre: "Beta", TarjetasEmitidas: 10, TarjetasActivas: 2},
		},
	}
	uc := salud.NewUseCase(api, nil, logSilencioso())

	rep, err := uc.Obtener(context.Background(), salud.FiltroTodos)
	require.NoError(t, err)

	assert.True(t, rep.ModoAlternativo)
	require.Len(t, rep.Contratos, 2)

	fila := rep.Contratos[0]
	assert.True(t, fila.PorcentajeUso.Equal(decimal.RequireFromString("75")), "uso: %s", fila.PorcentajeUso)
	assert.Equal(t, dsalud.NivelExcelente, fila.NivelSalud)
	assert.Equal(t, 80, fila.TarjetasPermitidas)

	assert.Equal(t, dsalud.NivelBajo, rep.Contratos[1].NivelSalud)
}

func TestObtenerAmbasRutasFallan(t *testing.T) {
	api := &apiFalsa{fallaSalud: true, fallaListar: true}
	uc := salud.NewUseCase(api, nil, logSilencioso())

	_, err := uc.Obtener(context.Background(), salud.FiltroTodos)
	assert.Error(t, err)
}

func TestObtenerFiltroPorNivel(t *testing.T) {
	api := &apiFalsa{
		salud: []entity.SaludContrato{
			{ContratoID: 1, NivelSalud: dsalud.NivelExcelente},
			{ContratoID: 2, NivelSalud: dsalud.NivelBajo},
			{ContratoID: 3, NivelSalud: dsalud.NivelExcelente},
		},
	}
	uc := salud.NewUseCase(api, nil, logSilencioso())

	rep, err := uc.Obtener(context.Background(), "Excelente")
	require.NoError(t, err)

	require.Len(t, rep.Contratos, 2)
	for _, f := range rep.Contratos {
		assert.Equal(t, dsalud.NivelExcelente, f.NivelSalud)
	}
	// El resumen cuenta sobre el total, no sobre lo filtrado.
	assert.Equal(t, 3, rep.Resumen.Total)
	assert.Equal(t, 1, rep.Resumen.Bajo)
}

func TestObtenerFiltroDesconocidoDevuelveTodo(t *testing.T) {
	api := &apiFalsa{
		salud: []entity.SaludContrato{{ContratoID: 1, NivelSalud: dsalud.NivelMedio}},
	}
	uc := salud.NewUseCase(api, nil, logSilencioso())

	rep, err := uc.Obtener(context.Background(), "cualquier-cosa")
	require.NoError(t, err)
	assert.Len(t, rep.Contratos, 1)
}

func TestObtenerRespaldoConListadoVacio(t *testing.T) {
	api := &apiFalsa{fallaSalud: true}
	uc := salud.NewUseCase(api, nil, logSilencioso())

	rep, err := uc.Obtener(context.Background(), salud.FiltroTodos)
	require.NoError(t, err)
	assert.True(t, rep.ModoAlternativo)
	assert.Empty(t, rep.Contratos)
	assert.Zero(t, rep.Resumen.Total)
}
