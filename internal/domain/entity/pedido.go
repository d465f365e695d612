package entity

import "time"

// Estados de un pedido según el backend. Las transiciones las ejecuta el
// sistema externo; aquí solo se reflejan.
const (
	PedidoPendiente  = "Pendiente"
	PedidoAprobado   = "Aprobado"
	PedidoRechazado  = "Rechazado"
	PedidoEnProceso  = "En Proceso"
	PedidoCompletado = "Completado"
)

// Pedido solicitud de tarjetas contra un contrato.
type Pedido struct {
	ID               int       `json:"pedido_id"`
	ContratoID       int       `json:"contrato_id"`
	ClienteID        int       `json:"cliente_id"`
	ProductoID       int       `json:"producto_id"`
	ClienteNombre    string    `json:"cliente_nombre,omitempty"`
	ProductoNombre   string    `json:"producto_nombre,omitempty"`
	Cantidad         int       `json:"cantidad"`
	Estado           string    `json:"estado"`
	RFC              string    `json:"rfc,omitempty"`
	RazonRechazo     string    `json:"razon_rechazo,omitempty"`
	DireccionEntrega string    `json:"direccion_entrega,omitempty"`
	FechaSolicitud   time.Time `json:"fecha_solicitud,omitempty"`
}

// NuevoPedido payload de creación de pedido hacia el backend.
type NuevoPedido struct {
	ContratoID int    `json:"contrato_id"`
	ClienteID  int    `json:"cliente_id"`
	ProductoID int    `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
	RFC        string `json:"rfc"`
}

// VerdictoValidacion respuesta del pre-chequeo POST /pedidos/validar,
// distinto de la creación del pedido.
type VerdictoValidacion struct {
	PuedeAprobar       bool   `json:"puede_aprobar"`
	Razon              string `json:"razon"`
	TarjetasPermitidas int    `json:"tarjetas_permitidas"`
}
