package entity

import "github.com/shopspring/decimal"

// Contrato relación cliente-producto con techo de emisión y conteos de tarjetas.
// Los conteos son propiedad del backend; aquí solo se consumen.
type Contrato struct {
	ID                int    `json:"id"`
	ClienteID         int    `json:"cliente_id"`
	ProductoID        int    `json:"producto_id"`
	ClienteNombre     string `json:"cliente_nombre"`
	ProductoNombre    string `json:"producto_nombre"`
	TarjetasEmitidas  int    `json:"tarjetas_emitidas"`
	TarjetasActivas   int    `json:"tarjetas_activas"`
	TarjetasInactivas int    `json:"tarjetas_inactivas"`
	LimiteContrato    int    `json:"limite_contrato"`
}

// SaludContrato contrato enriquecido con porcentaje de uso, nivel de salud y
// tarjetas autorizadas. Es la forma que entrega /contratos/salud del backend
// y también la salida del cálculo local de respaldo.
type SaludContrato struct {
	ContratoID         int             `json:"contrato_id"`
	Cliente            string          `json:"cliente"`
	Producto           string          `json:"producto"`
	TarjetasEmitidas   int             `json:"tarjetas_emitidas"`
	TarjetasActivas    int             `json:"tarjetas_activas"`
	TarjetasInactivas  int             `json:"tarjetas_inactivas"`
	PorcentajeUso      decimal.Decimal `json:"porcentaje_uso"`
	NivelSalud         string          `json:"nivel_salud"`
	TarjetasPermitidas int             `json:"tarjetas_permitidas"`
}

// ResumenContratos estadístico agregado que entrega /contratos/resumen/estadistico.
type ResumenContratos struct {
	TotalContratos   int             `json:"total_contratos"`
	TarjetasEmitidas int             `json:"tarjetas_emitidas"`
	TarjetasActivas  int             `json:"tarjetas_activas"`
	UsoPromedio      decimal.Decimal `json:"uso_promedio"`
}
