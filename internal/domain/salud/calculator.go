// Package salud implementa el cálculo local de salud de contratos (servicio
// de dominio). Es el respaldo cuando el endpoint /contratos/salud del backend
// no está disponible: reproduce la misma clasificación a partir de los
// conteos crudos del contrato.
package salud

import (
	"github.com/shopspring/decimal"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// Niveles de salud de un contrato, de mejor a peor.
const (
	NivelExcelente = "Excelente"
	NivelMedio     = "Rendimiento Medio"
	NivelAtencion  = "Necesita Atención"
	NivelBajo      = "Bajo Rendimiento"
)

// Umbral de autorización de tarjetas adicionales.
var umbralAutorizacion = decimal.NewFromInt(70)

var (
	umbral30 = decimal.NewFromInt(30)
	umbral50 = decimal.NewFromInt(50)
	umbral70 = decimal.NewFromInt(70)
	cien     = decimal.NewFromInt(100)
)

// PorcentajeUso = activas / emitidas * 100, redondeado a un decimal.
// Con emitidas = 0 el porcentaje se define como 0 (nunca división por cero).
func PorcentajeUso(emitidas, activas int) decimal.Decimal {
	if emitidas <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(activas)).
		Mul(cien).
		DivRound(decimal.NewFromInt(int64(emitidas)), 1)
}

// Clasificar asigna el nivel de salud según el porcentaje de uso. Los cortes
// son estrictos en 30/50/70: exactamente 70.0 clasifica como Excelente y
// exactamente 50.0 como Rendimiento Medio.
func Clasificar(porcentaje decimal.Decimal) string {
	switch {
	case porcentaje.LessThan(umbral30):
		return NivelBajo
	case porcentaje.LessThan(umbral50):
		return NivelAtencion
	case porcentaje.LessThan(umbral70):
		return NivelMedio
	default:
		return NivelExcelente
	}
}

// TarjetasPermitidas devuelve cuántas tarjetas adicionales se autorizan:
// max(0, limite - emitidas) con uso >= 70%, y 0 en caso contrario.
// Nunca negativo.
func TarjetasPermitidas(porcentaje decimal.Decimal, limite, emitidas int) int {
	if porcentaje.LessThan(umbralAutorizacion) {
		return 0
	}
	permitidas := limite - emitidas
	if permitidas < 0 {
		return 0
	}
	return permitidas
}

// Evaluar transforma un contrato crudo en su registro de salud.
// Transformación pura: no toca red ni estado.
func Evaluar(c entity.Contrato) entity.SaludContrato {
	porcentaje := PorcentajeUso(c.TarjetasEmitidas, c.TarjetasActivas)
	return entity.SaludContrato{
		ContratoID:         c.ID,
		Cliente:            c.ClienteNombre,
		Producto:           c.ProductoNombre,
		TarjetasEmitidas:   c.TarjetasEmitidas,
		TarjetasActivas:    c.TarjetasActivas,
		TarjetasInactivas:  c.TarjetasInactivas,
		PorcentajeUso:      porcentaje,
		NivelSalud:         Clasificar(porcentaje),
		TarjetasPermitidas: TarjetasPermitidas(porcentaje, c.LimiteContrato, c.TarjetasEmitidas),
	}
}

// EvaluarTodos evalúa una lista completa. Entrada vacía produce salida vacía;
// este cálculo es el manejador de fallos del endpoint primario y no falla.
func EvaluarTodos(contratos []entity.Contrato) []entity.SaludContrato {
	out := make([]entity.SaludContrato, 0, len(contratos))
	for _, c := range contratos {
		out = append(out, Evaluar(c))
	}
	return out
}
