package backend

import (
	"context"
	"fmt"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// ClientesAPI grupo de operaciones del recurso /clientes.
type ClientesAPI struct {
	c *Client
}

// NewClientesAPI construye el grupo.
func NewClientesAPI(c *Client) *ClientesAPI { return &ClientesAPI{c: c} }

// Listar devuelve todos los clientes.
func (a *ClientesAPI) Listar(ctx context.Context) ([]entity.Cliente, error) {
	var out []entity.Cliente
	if err := a.c.getJSON(ctx, "/clientes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Obtener devuelve un cliente por id.
func (a *ClientesAPI) Obtener(ctx context.Context, id int) (*entity.Cliente, error) {
	var out entity.Cliente
	if err := a.c.getJSON(ctx, fmt.Sprintf("/clientes/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Crear registra un cliente nuevo.
func (a *ClientesAPI) Crear(ctx context.Context, in entity.NuevoCliente) (*entity.Cliente, error) {
	var out entity.Cliente
	if err := a.c.postJSON(ctx, "/clientes", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Actualizar modifica los datos de contacto de un cliente.
func (a *ClientesAPI) Actualizar(ctx context.Context, id int, in entity.Cliente) (*entity.Cliente, error) {
	var out entity.Cliente
	if err := a.c.putJSON(ctx, fmt.Sprintf("/clientes/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
