// Package catalogo expone los catálogos de consulta del panel: clientes,
// productos y el cruce de productos contratados por cliente.
package catalogo

import (
	"context"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// ClientesAPI puerto hacia el recurso /clientes del backend.
type ClientesAPI interface {
	Listar(ctx context.Context) ([]entity.Cliente, error)
	Obtener(ctx context.Context, id int) (*entity.Cliente, error)
}

// ProductosAPI puerto hacia el recurso /productos del backend.
type ProductosAPI interface {
	Listar(ctx context.Context) ([]entity.Producto, error)
}

// ContratosAPI puerto hacia el recurso /contratos del backend.
type ContratosAPI interface {
	PorCliente(ctx context.Context, clienteID int) ([]entity.Contrato, error)
}

// ProductoContratado producto del catálogo junto con el contrato que lo ampara.
type ProductoContratado struct {
	entity.Producto
	ContratoID     int `json:"contrato_id"`
	LimiteContrato int `json:"limite_contrato"`
}

// UseCase catálogos de consulta.
type UseCase struct {
	clientes  ClientesAPI
	productos ProductosAPI
	contratos ContratosAPI
}

// NewUseCase construye el caso de uso.
func NewUseCase(clientes ClientesAPI, productos ProductosAPI, contratos ContratosAPI) *UseCase {
	return &UseCase{clientes: clientes, productos: productos, contratos: contratos}
}

// Clientes devuelve todos los clientes.
func (uc *UseCase) Clientes(ctx context.Context) ([]entity.Cliente, error) {
	return uc.clientes.Listar(ctx)
}

// Cliente devuelve un cliente por id.
func (uc *UseCase) Cliente(ctx context.Context, id int) (*entity.Cliente, error) {
	return uc.clientes.Obtener(ctx, id)
}

// Productos devuelve el catálogo completo.
func (uc *UseCase) Productos(ctx context.Context) ([]entity.Producto, error) {
	return uc.productos.Listar(ctx)
}

// ProductosConContrato devuelve solo los productos que el cliente tiene
// contratados, cruzando el catálogo con sus contratos. Un cliente sin
// contratos recibe lista vacía.
func (uc *UseCase) ProductosConContrato(ctx context.Context, clienteID int) ([]ProductoContratado, error) {
	contratos, err := uc.contratos.PorCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if len(contratos) == 0 {
		return []ProductoContratado{}, nil
	}

	productos, err := uc.productos.Listar(ctx)
	if err != nil {
		return nil, err
	}

	porProducto := make(map[int]entity.Contrato, len(contratos))
	for _, c := range contratos {
		porProducto[c.ProductoID] = c
	}

	out := make([]ProductoContratado, 0, len(contratos))
	for _, p := range productos {
		c, ok := porProducto[p.ID]
		if !ok {
			continue
		}
		out = append(out, ProductoContratado{
			Producto:       p,
			ContratoID:     c.ID,
			LimiteContrato: c.LimiteContrato,
		})
	}
	return out, nil
}
