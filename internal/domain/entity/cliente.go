package entity

// Cliente empresa registrada en la plataforma.
type Cliente struct {
	ID            int    `json:"id"`
	Nombre        string `json:"nombre"`
	RFC           string `json:"rfc"`
	ContactoEmail string `json:"contacto_email"`
	ContactoTel   string `json:"contacto_tel"`
	Direccion     string `json:"direccion,omitempty"`
}

// NuevoCliente payload de alta de cliente. PasswordHash viaja ya hasheado;
// la contraseña en claro nunca sale de este servicio.
type NuevoCliente struct {
	Nombre        string `json:"nombre"`
	RFC           string `json:"rfc"`
	ContactoEmail string `json:"contacto_email"`
	ContactoTel   string `json:"contacto_tel"`
	Direccion     string `json:"direccion,omitempty"`
	PasswordHash  string `json:"password_hash"`
}

// Producto tipo de tarjeta del catálogo.
type Producto struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Tipo        string `json:"tipo"`
	StockActual int    `json:"stock_actual"`
	StockMinimo int    `json:"stock_minimo"`
}
