// Package pdf implementa la generación del reporte imprimible de salud de
// contratos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de emisión                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total y conteo por nivel de salud                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Contrato | Cliente | Emitidas | Activas | Uso | ...  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: aviso de modo alternativo cuando aplica             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appsalud "github.com/smartstock/panel-api/internal/application/salud"
	"github.com/smartstock/panel-api/internal/domain/entity"
	dsalud "github.com/smartstock/panel-api/internal/domain/salud"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}

	colorExcelente = &props.Color{Red: 22, Green: 130, Blue: 53}
	colorMedio     = &props.Color{Red: 180, Green: 130, Blue: 0}
	colorAtencion  = &props.Color{Red: 200, Green: 90, Blue: 0}
	colorBajo      = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReporteSalud implementa salud.GeneradorReporte usando Maroto v2.
type ReporteSalud struct{}

// NewReporteSalud construye el generador.
func NewReporteSalud() *ReporteSalud { return &ReporteSalud{} }

// Generar arma el PDF del tablero y devuelve sus bytes.
func (g *ReporteSalud) Generar(reporte *appsalud.Reporte) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Salud de Contratos", true).
		WithAuthor("SmartStock Panel", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumenRow(reporte.Resumen))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableContratoRows(reporte.Contratos) {
		m.AddRows(r)
	}

	if reporte.ModoAlternativo {
		m.AddRows(line.NewRow(2))
		m.AddRows(avisoModoAlternativoRow())
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de emisión (der).
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE SALUD DE CONTRATOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SmartStock Panel", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// resumenRow: total de contratos y conteo por nivel.
func resumenRow(r appsalud.ResumenNiveles) core.Row {
	celda := func(etiqueta string, valor int, color *props.Color) core.Col {
		return col.New(2).Add(
			text.New(fmt.Sprintf("%d", valor), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
				Color: color, Top: 1,
			}),
			text.New(etiqueta, props.Text{
				Size: 7, Align: align.Center, Top: 8, Color: colorGray,
			}),
		)
	}

	return row.New(14).Add(
		col.New(1),
		celda("Contratos", r.Total, colorPrimary),
		celda("Excelente", r.Excelente, colorExcelente),
		celda("Rend. Medio", r.Medio, colorMedio),
		celda("Nec. Atención", r.Atencion, colorAtencion),
		celda("Bajo Rend.", r.Bajo, colorBajo),
		col.New(1),
	)
}

// tableHeaderRow: cabecera de la tabla de contratos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Cliente", 3, align.Left),
		h("Producto", 2, align.Left),
		h("Emitidas", 1, align.Right),
		h("Activas", 1, align.Right),
		h("Uso %", 1, align.Right),
		h("Nivel", 2, align.Left),
		h("Autorizadas", 1, align.Right),
	)
}

// tableContratoRows: una fila por contrato, con el nivel coloreado.
func tableContratoRows(contratos []entity.SaludContrato) []core.Row {
	result := make([]core.Row, 0, len(contratos))
	for _, c := range contratos {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", c.ContratoID),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				c.Cliente,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				c.Producto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", c.TarjetasEmitidas),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", c.TarjetasActivas),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				c.PorcentajeUso.StringFixed(1),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				c.NivelSalud,
				props.Text{
					Style: fontstyle.Bold, Size: 8, Align: align.Left,
					Top: 1, Left: 1, Color: colorNivel(c.NivelSalud),
				},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", c.TarjetasPermitidas),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// avisoModoAlternativoRow: leyenda cuando los datos salieron del cálculo local.
func avisoModoAlternativoRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Datos calculados localmente a partir de los conteos crudos: "+
				"el servicio de salud del backend no respondió al momento de emitir este reporte.",
			props.Text{Size: 7, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func colorNivel(nivel string) *props.Color {
	switch nivel {
	case dsalud.NivelExcelente:
		return colorExcelente
	case dsalud.NivelMedio:
		return colorMedio
	case dsalud.NivelAtencion:
		return colorAtencion
	default:
		return colorBajo
	}
}
