package backend

import (
	"context"
	"fmt"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// TicketsAPI grupo de operaciones del recurso /tickets.
type TicketsAPI struct {
	c *Client
}

// NewTicketsAPI construye el grupo.
func NewTicketsAPI(c *Client) *TicketsAPI { return &TicketsAPI{c: c} }

// Crear abre un ticket nuevo.
func (a *TicketsAPI) Crear(ctx context.Context, in entity.NuevoTicket) (*entity.Ticket, error) {
	var out entity.Ticket
	if err := a.c.postJSON(ctx, "/tickets", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PorCliente devuelve los tickets de un cliente.
func (a *TicketsAPI) PorCliente(ctx context.Context, clienteID int) ([]entity.Ticket, error) {
	var out []entity.Ticket
	if err := a.c.getJSON(ctx, fmt.Sprintf("/tickets/cliente/%d", clienteID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Detalle devuelve un ticket con su hilo de respuestas.
func (a *TicketsAPI) Detalle(ctx context.Context, id int) (*entity.Ticket, error) {
	var out entity.Ticket
	if err := a.c.getJSON(ctx, fmt.Sprintf("/tickets/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Responder agrega un mensaje al hilo.
func (a *TicketsAPI) Responder(ctx context.Context, in entity.NuevaRespuesta) error {
	return a.c.postJSON(ctx, "/tickets/respuesta", in, nil)
}

// Cerrar cierra el ticket.
func (a *TicketsAPI) Cerrar(ctx context.Context, id int) error {
	return a.c.putJSON(ctx, fmt.Sprintf("/tickets/%d/cerrar", id), nil, nil)
}
