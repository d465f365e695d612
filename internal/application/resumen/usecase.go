// Package resumen arma la vista general del panel agregando las métricas de
// contratos, inventario, alertas y pedidos. El agregado es tolerante: si una
// sección falla, las demás se entregan igual y la sección caída se marca.
package resumen

import (
	"context"

	"github.com/smartstock/panel-api/internal/domain/entity"
	"github.com/smartstock/panel-api/pkg/logger"
)

// ContratosAPI puerto hacia el agregado de contratos.
type ContratosAPI interface {
	Resumen(ctx context.Context) (*entity.ResumenContratos, error)
}

// InventarioAPI puerto hacia el agregado de inventario.
type InventarioAPI interface {
	Resumen(ctx context.Context) (*entity.ResumenInventario, error)
}

// AlertasAPI puerto hacia las alertas pendientes.
type AlertasAPI interface {
	NoResueltas(ctx context.Context) ([]entity.Alerta, error)
}

// PedidosAPI puerto hacia el listado de pedidos.
type PedidosAPI interface {
	Listar(ctx context.Context) ([]entity.Pedido, error)
}

// ResumenPedidos conteo de pedidos por estado.
type ResumenPedidos struct {
	Total      int `json:"total"`
	Pendientes int `json:"pendientes"`
	Aprobados  int `json:"aprobados"`
	Rechazados int `json:"rechazados"`
}

// Vista agregado completo del panel. Las secciones que fallaron llegan nil y
// listadas en SeccionesCaidas.
type Vista struct {
	Contratos         *entity.ResumenContratos  `json:"contratos,omitempty"`
	Inventario        *entity.ResumenInventario `json:"inventario,omitempty"`
	AlertasPendientes *int                      `json:"alertas_pendientes,omitempty"`
	Pedidos           *ResumenPedidos           `json:"pedidos,omitempty"`
	SeccionesCaidas   []string                  `json:"secciones_caidas,omitempty"`
}

// UseCase vista general del panel.
type UseCase struct {
	contratos  ContratosAPI
	inventario InventarioAPI
	alertas    AlertasAPI
	pedidos    PedidosAPI
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(contratos ContratosAPI, inventario InventarioAPI, alertas AlertasAPI, pedidos PedidosAPI, log *logger.Logger) *UseCase {
	return &UseCase{contratos: contratos, inventario: inventario, alertas: alertas, pedidos: pedidos, log: log}
}

// Obtener consulta las cuatro secciones en secuencia. Un fallo individual se
// registra y la vista sigue armándose con lo que sí respondió.
func (uc *UseCase) Obtener(ctx context.Context) *Vista {
	v := &Vista{}

	if r, err := uc.contratos.Resumen(ctx); err != nil {
		uc.seccionCaida(v, "contratos", err)
	} else {
		v.Contratos = r
	}

	if r, err := uc.inventario.Resumen(ctx); err != nil {
		uc.seccionCaida(v, "inventario", err)
	} else {
		v.Inventario = r
	}

	if alertas, err := uc.alertas.NoResueltas(ctx); err != nil {
		uc.seccionCaida(v, "alertas", err)
	} else {
		n := len(alertas)
		v.AlertasPendientes = &n
	}

	if pedidos, err := uc.pedidos.Listar(ctx); err != nil {
		uc.seccionCaida(v, "pedidos", err)
	} else {
		v.Pedidos = contarPedidos(pedidos)
	}

	return v
}

func (uc *UseCase) seccionCaida(v *Vista, seccion string, err error) {
	uc.log.Warn().Err(err).Str("seccion", seccion).Msg("sección del resumen no disponible")
	v.SeccionesCaidas = append(v.SeccionesCaidas, seccion)
}

func contarPedidos(pedidos []entity.Pedido) *ResumenPedidos {
	r := &ResumenPedidos{Total: len(pedidos)}
	for _, p := range pedidos {
		switch p.Estado {
		case entity.PedidoPendiente:
			r.Pendientes++
		case entity.PedidoAprobado:
			r.Aprobados++
		case entity.PedidoRechazado:
			r.Rechazados++
		}
	}
	return r
}
