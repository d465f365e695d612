// Package tickets gestiona los tickets de soporte: apertura, hilo de
// respuestas y cierre. Un ticket cerrado no admite más mensajes.
package tickets

import (
	"context"
	"fmt"
	"strings"

	"github.com/smartstock/panel-api/internal/domain"
	"github.com/smartstock/panel-api/internal/domain/entity"
)

// API puerto hacia el recurso /tickets del backend.
type API interface {
	Crear(ctx context.Context, in entity.NuevoTicket) (*entity.Ticket, error)
	PorCliente(ctx context.Context, clienteID int) ([]entity.Ticket, error)
	Detalle(ctx context.Context, id int) (*entity.Ticket, error)
	Responder(ctx context.Context, in entity.NuevaRespuesta) error
	Cerrar(ctx context.Context, id int) error
}

// Notificador puerto hacia el centro de notificaciones.
type Notificador interface {
	Exito(mensaje string) string
}

// UseCase soporte por tickets.
type UseCase struct {
	api API
	ntf Notificador
}

// NewUseCase construye el caso de uso.
func NewUseCase(api API, ntf Notificador) *UseCase {
	return &UseCase{api: api, ntf: ntf}
}

// Crear abre un ticket. Asunto y mensaje son obligatorios.
func (uc *UseCase) Crear(ctx context.Context, in entity.NuevoTicket) (*entity.Ticket, error) {
	if strings.TrimSpace(in.Asunto) == "" {
		return nil, fmt.Errorf("%w: el asunto es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Mensaje) == "" {
		return nil, fmt.Errorf("%w: el mensaje es requerido", domain.ErrInvalidInput)
	}
	if in.ClienteID <= 0 {
		return nil, fmt.Errorf("%w: selecciona un cliente", domain.ErrInvalidInput)
	}

	ticket, err := uc.api.Crear(ctx, in)
	if err != nil {
		return nil, err
	}
	uc.ntf.Exito(fmt.Sprintf("Ticket #%d creado", ticket.ID))
	return ticket, nil
}

// PorCliente devuelve los tickets de un cliente.
func (uc *UseCase) PorCliente(ctx context.Context, clienteID int) ([]entity.Ticket, error) {
	return uc.api.PorCliente(ctx, clienteID)
}

// Detalle devuelve un ticket con su hilo completo.
func (uc *UseCase) Detalle(ctx context.Context, id int) (*entity.Ticket, error) {
	return uc.api.Detalle(ctx, id)
}

// Responder agrega un mensaje al hilo. Se consulta el estado actual primero:
// responder sobre un ticket cerrado es un conflicto, no un reenvío.
func (uc *UseCase) Responder(ctx context.Context, in entity.NuevaRespuesta) error {
	if strings.TrimSpace(in.Mensaje) == "" {
		return fmt.Errorf("%w: el mensaje es requerido", domain.ErrInvalidInput)
	}

	ticket, err := uc.api.Detalle(ctx, in.TicketID)
	if err != nil {
		return err
	}
	if ticket.Estado == entity.TicketCerrado {
		return domain.ErrTicketCerrado
	}
	return uc.api.Responder(ctx, in)
}

// Cerrar cierra un ticket.
func (uc *UseCase) Cerrar(ctx context.Context, id int) error {
	if err := uc.api.Cerrar(ctx, id); err != nil {
		return err
	}
	uc.ntf.Exito(fmt.Sprintf("Ticket #%d cerrado", id))
	return nil
}
