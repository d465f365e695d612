package backend

import (
	"context"
	"fmt"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// ContratosAPI grupo de operaciones del recurso /contratos, incluidas las
// variantes de salud y resumen estadístico.
type ContratosAPI struct {
	c *Client
}

// NewContratosAPI construye el grupo.
func NewContratosAPI(c *Client) *ContratosAPI { return &ContratosAPI{c: c} }

// Listar devuelve todos los contratos con sus conteos crudos.
func (a *ContratosAPI) Listar(ctx context.Context) ([]entity.Contrato, error) {
	var out []entity.Contrato
	if err := a.c.getJSON(ctx, "/contratos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Salud devuelve los contratos con la salud ya calculada por el backend.
// Es el endpoint primario del dashboard de rendimiento; su fallo activa el
// cálculo local de respaldo.
func (a *ContratosAPI) Salud(ctx context.Context) ([]entity.SaludContrato, error) {
	var out []entity.SaludContrato
	if err := a.c.getJSON(ctx, "/contratos/salud", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PorCliente devuelve los contratos de un cliente.
func (a *ContratosAPI) PorCliente(ctx context.Context, clienteID int) ([]entity.Contrato, error) {
	var out []entity.Contrato
	if err := a.c.getJSON(ctx, fmt.Sprintf("/contratos/cliente/%d", clienteID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Resumen devuelve el agregado estadístico de contratos.
func (a *ContratosAPI) Resumen(ctx context.Context) (*entity.ResumenContratos, error) {
	var out entity.ResumenContratos
	if err := a.c.getJSON(ctx, "/contratos/resumen/estadistico", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
