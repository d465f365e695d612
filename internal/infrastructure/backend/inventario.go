package backend

import (
	"context"
	"fmt"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// InventarioAPI grupo de operaciones del recurso /inventario.
type InventarioAPI struct {
	c *Client
}

// NewInventarioAPI construye el grupo.
func NewInventarioAPI(c *Client) *InventarioAPI { return &InventarioAPI{c: c} }

// Estados devuelve el nivel de stock de todos los productos.
func (a *InventarioAPI) Estados(ctx context.Context) ([]entity.EstadoInventario, error) {
	var out []entity.EstadoInventario
	if err := a.c.getJSON(ctx, "/inventario/estados", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PorProducto devuelve el estado de inventario de un producto.
func (a *InventarioAPI) PorProducto(ctx context.Context, productoID int) (*entity.EstadoInventario, error) {
	var out entity.EstadoInventario
	if err := a.c.getJSON(ctx, fmt.Sprintf("/inventario/producto/%d", productoID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Resumen devuelve el agregado de inventario.
func (a *InventarioAPI) Resumen(ctx context.Context) (*entity.ResumenInventario, error) {
	var out entity.ResumenInventario
	if err := a.c.getJSON(ctx, "/inventario/resumen", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Movimientos devuelve el historial de entradas y salidas.
func (a *InventarioAPI) Movimientos(ctx context.Context) ([]entity.MovimientoInventario, error) {
	var out []entity.MovimientoInventario
	if err := a.c.getJSON(ctx, "/inventario/movimientos", &out); err != nil {
		return nil, err
	}
	return out, nil
}
