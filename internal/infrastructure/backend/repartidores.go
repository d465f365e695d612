package backend

import (
	"context"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// RepartidoresAPI grupo de operaciones del recurso /repartidores.
type RepartidoresAPI struct {
	c *Client
}

// NewRepartidoresAPI construye el grupo.
func NewRepartidoresAPI(c *Client) *RepartidoresAPI { return &RepartidoresAPI{c: c} }

// Listar devuelve todos los repartidores.
func (a *RepartidoresAPI) Listar(ctx context.Context) ([]entity.Repartidor, error) {
	var out []entity.Repartidor
	if err := a.c.getJSON(ctx, "/repartidores", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Disponibles devuelve el pool de repartidores libres para asignación.
func (a *RepartidoresAPI) Disponibles(ctx context.Context) ([]entity.Repartidor, error) {
	var out []entity.Repartidor
	if err := a.c.getJSON(ctx, "/repartidores?disponible=true", &out); err != nil {
		return nil, err
	}
	return out, nil
}
