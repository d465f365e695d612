package entity

// ResumenNomina métricas de una nómina validada con éxito.
type ResumenNomina struct {
	TotalRegistros     int     `json:"total_registros"`
	EmpleadosValidos   int     `json:"empleados_validos"`
	MinimoRequerido    int     `json:"minimo_requerido"`
	PorcentajeCumplido float64 `json:"porcentaje_cumplido"`
}

// DetalleNomina desglose de una nómina rechazada por no cubrir el mínimo.
type DetalleNomina struct {
	TarjetasSolicitadas         int     `json:"tarjetas_solicitadas"`
	MinimoEmpleadosRequerido    int     `json:"minimo_empleados_requerido"`
	EmpleadosValidosEncontrados int     `json:"empleados_validos_encontrados"`
	Faltante                    int     `json:"faltante"`
	PorcentajeCumplido          float64 `json:"porcentaje_cumplido"`
}

// ResultadoNomina veredicto de la validación de nómina. La regla de negocio:
// el archivo debe traer al menos el 90% de empleados válidos respecto a las
// tarjetas solicitadas.
type ResultadoNomina struct {
	Success bool           `json:"success"`
	Mensaje string         `json:"mensaje"`
	Resumen *ResumenNomina `json:"resumen,omitempty"`
	Detalle *DetalleNomina `json:"detalle,omitempty"`
}
