package entity

import "time"

// Estados de un envío.
const (
	EnvioPendiente  = "pendiente"
	EnvioEnTransito = "en_transito"
	EnvioEntregado  = "entregado"
)

// Ubicacion coordenadas de seguimiento en vivo.
type Ubicacion struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Envio despacho de un pedido con código de tracking y repartidor asignado.
type Envio struct {
	ID               int        `json:"id"`
	PedidoID         int        `json:"pedido_id"`
	RepartidorID     int        `json:"repartidor_id"`
	RepartidorNombre string     `json:"repartidor_nombre,omitempty"`
	TrackingCode     string     `json:"tracking_code"`
	Status           string     `json:"status"`
	DireccionDestino string     `json:"direccion_destino"`
	UbicacionActual  *Ubicacion `json:"ubicacion_actual,omitempty"`
	PedidoEstado     string     `json:"pedido_estado,omitempty"`
	FechaEntrega     *time.Time `json:"fecha_entrega,omitempty"`
}

// NuevoEnvio payload de creación de envío hacia el backend.
type NuevoEnvio struct {
	PedidoID         int       `json:"pedido_id"`
	RepartidorID     int       `json:"repartidor_id"`
	DireccionDestino string    `json:"direccion_destino"`
	UbicacionActual  Ubicacion `json:"ubicacion_actual"`
}

// Repartidor agente de entrega del pool de reparto.
type Repartidor struct {
	ID         int    `json:"id"`
	Nombre     string `json:"nombre"`
	Telefono   string `json:"telefono,omitempty"`
	Disponible bool   `json:"disponible"`
}
