package backend

import (
	"context"
	"fmt"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// EnviosAPI grupo de operaciones del recurso /envios.
type EnviosAPI struct {
	c *Client
}

// NewEnviosAPI construye el grupo.
func NewEnviosAPI(c *Client) *EnviosAPI { return &EnviosAPI{c: c} }

// Crear despacha un pedido y devuelve el envío con su tracking code.
func (a *EnviosAPI) Crear(ctx context.Context, in entity.NuevoEnvio) (*entity.Envio, error) {
	var out entity.Envio
	if err := a.c.postJSON(ctx, "/envios", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Activos devuelve los envíos en curso (pendiente o en tránsito).
func (a *EnviosAPI) Activos(ctx context.Context) ([]entity.Envio, error) {
	var out []entity.Envio
	if err := a.c.getJSON(ctx, "/envios/activos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Tracking busca un envío por su código de seguimiento.
func (a *EnviosAPI) Tracking(ctx context.Context, code string) (*entity.Envio, error) {
	var out entity.Envio
	if err := a.c.getJSON(ctx, "/envios/tracking/"+code, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PorCliente devuelve los envíos de un cliente.
func (a *EnviosAPI) PorCliente(ctx context.Context, clienteID int) ([]entity.Envio, error) {
	var out []entity.Envio
	if err := a.c.getJSON(ctx, fmt.Sprintf("/envios/cliente/%d", clienteID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActualizarUbicacion reporta la posición actual del envío.
func (a *EnviosAPI) ActualizarUbicacion(ctx context.Context, id int, ubicacion entity.Ubicacion) error {
	return a.c.putJSON(ctx, fmt.Sprintf("/envios/%d/ubicacion", id), ubicacion, nil)
}

// MarcarEntregado cierra el envío.
func (a *EnviosAPI) MarcarEntregado(ctx context.Context, id int, receptor string) error {
	in := map[string]string{"receptor": receptor}
	return a.c.putJSON(ctx, fmt.Sprintf("/envios/%d/entregar", id), in, nil)
}
