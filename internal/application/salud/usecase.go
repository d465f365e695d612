// Package salud orquesta el dashboard de rendimiento de contratos: intenta el
// endpoint de salud del backend y, si falla, reconstruye la información con el
// cálculo local a partir de los conteos crudos.
package salud

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/smartstock/panel-api/internal/domain/entity"
	dsalud "github.com/smartstock/panel-api/internal/domain/salud"
	"github.com/smartstock/panel-api/pkg/logger"
)

// Filtros de nivel aceptados por el tablero.
const (
	FiltroTodos     = "todos"
	FiltroBajo      = "bajo"
	FiltroAtencion  = "necesita"
	FiltroMedio     = "medio"
	FiltroExcelente = "excelente"
)

var nivelPorFiltro = map[string]string{
	FiltroBajo:      dsalud.NivelBajo,
	FiltroAtencion:  dsalud.NivelAtencion,
	FiltroMedio:     dsalud.NivelMedio,
	FiltroExcelente: dsalud.NivelExcelente,
}

// API puerto hacia el recurso /contratos del backend.
type API interface {
	Salud(ctx context.Context) ([]entity.SaludContrato, error)
	Listar(ctx context.Context) ([]entity.Contrato, error)
}

// GeneradorReporte produce la versión imprimible del tablero.
type GeneradorReporte interface {
	Generar(reporte *Reporte) ([]byte, error)
}

// Reporte tablero completo: filas ya ordenadas, conteos por nivel y la marca
// de si los datos salieron del cálculo local de respaldo.
type Reporte struct {
	Contratos       []entity.SaludContrato `json:"contratos"`
	Resumen         ResumenNiveles         `json:"resumen"`
	ModoAlternativo bool                   `json:"modo_alternativo"`
}

// ResumenNiveles conteo de contratos por nivel de salud.
type ResumenNiveles struct {
	Total     int `json:"total"`
	Excelente int `json:"excelente"`
	Medio     int `json:"medio"`
	Atencion  int `json:"necesita_atencion"`
	Bajo      int `json:"bajo_rendimiento"`
}

// UseCase tablero de salud de contratos.
type UseCase struct {
	api API
	gen GeneradorReporte
	log *logger.Logger
}

// NewUseCase construye el caso de uso. gen puede ser nil si el despliegue no
// ofrece reportes PDF.
func NewUseCase(api API, gen GeneradorReporte, log *logger.Logger) *UseCase {
	return &UseCase{api: api, gen: gen, log: log}
}

// Obtener arma el tablero. Primero consulta /contratos/salud; si el backend
// no responde recurre al listado crudo y evalúa cada contrato localmente
// marcando modo_alternativo. Solo propaga error cuando ambas rutas fallan.
func (uc *UseCase) Obtener(ctx context.Context, filtro string) (*Reporte, error) {
	filas, err := uc.api.Salud(ctx)
	modoAlternativo := false
	if err != nil {
		uc.log.Warn().Err(err).Msg("endpoint de salud no disponible, usando cálculo local")
		contratos, errListar := uc.api.Listar(ctx)
		if errListar != nil {
			return nil, errListar
		}
		filas = dsalud.EvaluarTodos(contratos)
		modoAlternativo = true
	}

	sort.Slice(filas, func(i, j int) bool {
		return filas[i].ContratoID < filas[j].ContratoID
	})

	resumen := contarNiveles(filas)
	if nivel, ok := nivelPorFiltro[normalizarFiltro(filtro)]; ok {
		filtradas := make([]entity.SaludContrato, 0, len(filas))
		for _, f := range filas {
			if f.NivelSalud == nivel {
				filtradas = append(filtradas, f)
			}
		}
		filas = filtradas
	}

	return &Reporte{
		Contratos:       filas,
		Resumen:         resumen,
		ModoAlternativo: modoAlternativo,
	}, nil
}

// ReportePDF arma el tablero completo y lo entrega como PDF.
func (uc *UseCase) ReportePDF(ctx context.Context) ([]byte, error) {
	if uc.gen == nil {
		return nil, errors.New("el reporte PDF no está habilitado")
	}
	reporte, err := uc.Obtener(ctx, FiltroTodos)
	if err != nil {
		return nil, err
	}
	return uc.gen.Generar(reporte)
}

func normalizarFiltro(filtro string) string {
	return strings.ToLower(strings.TrimSpace(filtro))
}

// contarNiveles cuenta sobre el total, antes de aplicar filtro.
func contarNiveles(filas []entity.SaludContrato) ResumenNiveles {
	r := ResumenNiveles{Total: len(filas)}
	for _, f := range filas {
		switch f.NivelSalud {
		case dsalud.NivelExcelente:
			r.Excelente++
		case dsalud.NivelMedio:
			r.Medio++
		case dsalud.NivelAtencion:
			r.Atencion++
		case dsalud.NivelBajo:
			r.Bajo++
		}
	}
	return r
}
