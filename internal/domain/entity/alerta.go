package entity

import "time"

// Severidades de alerta de stock.
const (
	SeveridadCritico = "Crítico"
	SeveridadAlto    = "Alto"
	SeveridadMedio   = "Medio"
	SeveridadBajo    = "Bajo"
)

// Alerta aviso de stock generado por el backend.
type Alerta struct {
	ID             int       `json:"id"`
	ProductoID     int       `json:"producto_id"`
	ProductoNombre string    `json:"producto_nombre,omitempty"`
	Severidad      string    `json:"severidad"`
	Mensaje        string    `json:"mensaje"`
	Resuelta       bool      `json:"resuelta"`
	FechaCreacion  time.Time `json:"fecha_creacion,omitempty"`
}
