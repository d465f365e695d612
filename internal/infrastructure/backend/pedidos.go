package backend

import (
	"context"
	"fmt"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// PedidosAPI grupo de operaciones del recurso /pedidos. Validar es un
// pre-chequeo separado de la creación.
type PedidosAPI struct {
	c *Client
}

// NewPedidosAPI construye el grupo.
func NewPedidosAPI(c *Client) *PedidosAPI { return &PedidosAPI{c: c} }

// Validar consulta si una cantidad puede aprobarse contra un contrato.
func (a *PedidosAPI) Validar(ctx context.Context, contratoID, cantidad int) (*entity.VerdictoValidacion, error) {
	in := map[string]int{"contratoId": contratoID, "cantidad": cantidad}
	var out entity.VerdictoValidacion
	if err := a.c.postJSON(ctx, "/pedidos/validar", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Crear registra el pedido. Solo debe llamarse con veredicto aprobado.
func (a *PedidosAPI) Crear(ctx context.Context, in entity.NuevoPedido) (*entity.Pedido, error) {
	var out entity.Pedido
	if err := a.c.postJSON(ctx, "/pedidos", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Listar devuelve todos los pedidos.
func (a *PedidosAPI) Listar(ctx context.Context) ([]entity.Pedido, error) {
	var out []entity.Pedido
	if err := a.c.getJSON(ctx, "/pedidos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PendientesEnvio devuelve los pedidos aprobados que aún no tienen envío.
func (a *PedidosAPI) PendientesEnvio(ctx context.Context) ([]entity.Pedido, error) {
	var out []entity.Pedido
	if err := a.c.getJSON(ctx, "/pedidos?estado=pendiente_envio", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Aprobar ejecuta la transición Pendiente -> Aprobado en el backend.
func (a *PedidosAPI) Aprobar(ctx context.Context, id int, usuario string) error {
	in := map[string]string{"usuario": usuario}
	return a.c.putJSON(ctx, fmt.Sprintf("/pedidos/%d/aprobar", id), in, nil)
}

// Rechazar ejecuta la transición Pendiente -> Rechazado con una razón.
func (a *PedidosAPI) Rechazar(ctx context.Context, id int, razon string) error {
	in := map[string]string{"razon_rechazo": razon}
	return a.c.putJSON(ctx, fmt.Sprintf("/pedidos/%d/rechazar", id), in, nil)
}
