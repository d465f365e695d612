package entity

import "time"

// EstadoInventario nivel de stock de un producto según el backend.
type EstadoInventario struct {
	ProductoID     int    `json:"producto_id"`
	ProductoNombre string `json:"producto_nombre"`
	StockActual    int    `json:"stock_actual"`
	StockMinimo    int    `json:"stock_minimo"`
	Estado         string `json:"estado"`
}

// ResumenInventario agregado que entrega /inventario/resumen.
type ResumenInventario struct {
	TotalProductos int `json:"total_productos"`
	StockTotal     int `json:"stock_total"`
	BajoStock      int `json:"bajo_stock"`
	SinStock       int `json:"sin_stock"`
}

// MovimientoInventario entrada o salida de stock registrada por el backend.
type MovimientoInventario struct {
	ID             int       `json:"id"`
	ProductoID     int       `json:"producto_id"`
	ProductoNombre string    `json:"producto_nombre,omitempty"`
	Tipo           string    `json:"tipo"` // entrada | salida
	Cantidad       int       `json:"cantidad"`
	Fecha          time.Time `json:"fecha,omitempty"`
}
