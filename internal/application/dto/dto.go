// Package dto define los contratos de entrada y salida de la API HTTP.
package dto

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LoginRequest credenciales de demostración del panel.
type LoginRequest struct {
	Username string `json:"username"`
	Rol      string `json:"rol"`
}

// LineaPedidoRequest una línea del formulario de pedidos por lote.
type LineaPedidoRequest struct {
	ContratoID int `json:"contrato_id"`
	ClienteID  int `json:"cliente_id"`
	ProductoID int `json:"producto_id"`
	Cantidad   int `json:"cantidad"`
}

// ValidarPedidosRequest lote de líneas a pre-validar, sin crear pedidos.
type ValidarPedidosRequest struct {
	Lineas []LineaPedidoRequest `json:"lineas"`
}

// LineaValidadaResponse veredicto de una línea tras el pre-chequeo.
type LineaValidadaResponse struct {
	ContratoID         int    `json:"contrato_id"`
	Cantidad           int    `json:"cantidad"`
	Estado             string `json:"estado"`
	PuedeAprobar       bool   `json:"puede_aprobar"`
	Razon              string `json:"razon,omitempty"`
	TarjetasPermitidas int    `json:"tarjetas_permitidas,omitempty"`
	Error              string `json:"error,omitempty"`
}

// ValidarPedidosResponse veredictos por línea de un lote.
type ValidarPedidosResponse struct {
	Aprobadas  int                     `json:"aprobadas"`
	Rechazadas int                     `json:"rechazadas"`
	Lineas     []LineaValidadaResponse `json:"lineas"`
}

// ConfirmarPedidosRequest lote de líneas a validar y confirmar con un RFC.
type ConfirmarPedidosRequest struct {
	RFC    string               `json:"rfc"`
	Lineas []LineaPedidoRequest `json:"lineas"`
}

// LineaPedidoResponse estado final de una línea tras la confirmación.
type LineaPedidoResponse struct {
	ContratoID int    `json:"contrato_id"`
	Cantidad   int    `json:"cantidad"`
	Estado     string `json:"estado"`
	Razon      string `json:"razon,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ConfirmarPedidosResponse resultado agregado de la confirmación.
type ConfirmarPedidosResponse struct {
	Exitosos int                   `json:"exitosos"`
	Fallidos int                   `json:"fallidos"`
	Lineas   []LineaPedidoResponse `json:"lineas"`
}

// RechazarPedidoRequest razón del rechazo de un pedido.
type RechazarPedidoRequest struct {
	Razon string `json:"razon"`
}

// CrearEnvioRequest despacho individual de un pedido.
type CrearEnvioRequest struct {
	PedidoID         int    `json:"pedido_id"`
	RepartidorID     int    `json:"repartidor_id"`
	DireccionDestino string `json:"direccion_destino"`
}

// EntregarEnvioRequest cierre de un envío con el receptor.
type EntregarEnvioRequest struct {
	Receptor string `json:"receptor"`
}

// ResponderTicketRequest mensaje nuevo sobre un ticket.
type ResponderTicketRequest struct {
	Autor   string `json:"autor"`
	Mensaje string `json:"mensaje"`
}
