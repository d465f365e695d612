// Package inventario expone el estado de stock del backend para el panel.
package inventario

import (
	"context"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// API puerto hacia el recurso /inventario del backend.
type API interface {
	Estados(ctx context.Context) ([]entity.EstadoInventario, error)
	PorProducto(ctx context.Context, productoID int) (*entity.EstadoInventario, error)
	Resumen(ctx context.Context) (*entity.ResumenInventario, error)
	Movimientos(ctx context.Context) ([]entity.MovimientoInventario, error)
}

// UseCase consulta de inventario.
type UseCase struct {
	api API
}

// NewUseCase construye el caso de uso.
func NewUseCase(api API) *UseCase {
	return &UseCase{api: api}
}

// Estados devuelve el nivel de stock de todos los productos.
func (uc *UseCase) Estados(ctx context.Context) ([]entity.EstadoInventario, error) {
	return uc.api.Estados(ctx)
}

// PorProducto devuelve el estado de un producto.
func (uc *UseCase) PorProducto(ctx context.Context, productoID int) (*entity.EstadoInventario, error) {
	return uc.api.PorProducto(ctx, productoID)
}

// Resumen devuelve el agregado de inventario.
func (uc *UseCase) Resumen(ctx context.Context) (*entity.ResumenInventario, error) {
	return uc.api.Resumen(ctx)
}

// Movimientos devuelve el historial de entradas y salidas.
func (uc *UseCase) Movimientos(ctx context.Context) ([]entity.MovimientoInventario, error) {
	return uc.api.Movimientos(ctx)
}
