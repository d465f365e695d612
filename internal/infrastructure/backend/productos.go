package backend

import (
	"context"
	"fmt"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// ProductosAPI grupo de operaciones del recurso /productos.
type ProductosAPI struct {
	c *Client
}

// NewProductosAPI construye el grupo.
func NewProductosAPI(c *Client) *ProductosAPI { return &ProductosAPI{c: c} }

// Listar devuelve el catálogo completo.
func (a *ProductosAPI) Listar(ctx context.Context) ([]entity.Producto, error) {
	var out []entity.Producto
	if err := a.c.getJSON(ctx, "/productos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Obtener devuelve un producto por id.
func (a *ProductosAPI) Obtener(ctx context.Context, id int) (*entity.Producto, error) {
	var out entity.Producto
	if err := a.c.getJSON(ctx, fmt.Sprintf("/productos/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
