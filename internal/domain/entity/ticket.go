package entity

import "time"

// Estados de un ticket de soporte.
const (
	TicketAbierto   = "abierto"
	TicketEnProceso = "en_proceso"
	TicketResuelto  = "resuelto"
	TicketCerrado   = "cerrado"
)

// Ticket hilo de comunicación entre un cliente y soporte.
type Ticket struct {
	ID         int               `json:"id"`
	ClienteID  int               `json:"cliente_id"`
	Tipo       string            `json:"tipo"`
	Asunto     string            `json:"asunto"`
	Mensaje    string            `json:"mensaje"`
	Estado     string            `json:"estado"`
	Respuestas []RespuestaTicket `json:"respuestas,omitempty"`
	CreadoEn   time.Time         `json:"creado_en,omitempty"`
}

// RespuestaTicket mensaje dentro del hilo de un ticket.
type RespuestaTicket struct {
	ID       int       `json:"id"`
	TicketID int       `json:"ticket_id"`
	Autor    string    `json:"autor"`
	Mensaje  string    `json:"mensaje"`
	CreadoEn time.Time `json:"creado_en,omitempty"`
}

// NuevoTicket payload de creación de ticket.
type NuevoTicket struct {
	ClienteID int    `json:"cliente_id"`
	Tipo      string `json:"tipo"`
	Asunto    string `json:"asunto"`
	Mensaje   string `json:"mensaje"`
}

// NuevaRespuesta payload de respuesta sobre un ticket existente.
type NuevaRespuesta struct {
	TicketID int    `json:"ticket_id"`
	Autor    string `json:"autor"`
	Mensaje  string `json:"mensaje"`
}
