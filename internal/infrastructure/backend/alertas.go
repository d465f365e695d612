package backend

import (
	"context"
	"fmt"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// AlertasAPI grupo de operaciones del recurso /alertas.
type AlertasAPI struct {
	c *Client
}

// NewAlertasAPI construye el grupo.
func NewAlertasAPI(c *Client) *AlertasAPI { return &AlertasAPI{c: c} }

// Listar devuelve todas las alertas.
func (a *AlertasAPI) Listar(ctx context.Context) ([]entity.Alerta, error) {
	var out []entity.Alerta
	if err := a.c.getJSON(ctx, "/alertas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NoResueltas devuelve solo las alertas pendientes de atención.
func (a *AlertasAPI) NoResueltas(ctx context.Context) ([]entity.Alerta, error) {
	var out []entity.Alerta
	if err := a.c.getJSON(ctx, "/alertas/no-resueltas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Resolver marca una alerta como atendida.
func (a *AlertasAPI) Resolver(ctx context.Context, id int) error {
	return a.c.putJSON(ctx, fmt.Sprintf("/alertas/%d/resolver", id), nil, nil)
}

// Generar pide al backend recalcular alertas de stock.
func (a *AlertasAPI) Generar(ctx context.Context) ([]entity.Alerta, error) {
	var out []entity.Alerta
	if err := a.c.postJSON(ctx, "/alertas/generar", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
