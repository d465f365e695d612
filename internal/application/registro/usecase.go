// Package registro implementa el alta de clientes: validación campo a campo
// del formulario y reenvío al backend con la contraseña ya hasheada.
package registro

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// RFC de empresa: 3 letras, 6 dígitos de fecha y 3 de homoclave. Exactamente
// 12 caracteres.
var reRFCEmpresa = regexp.MustCompile(`^[A-ZÑ&]{3}[0-9]{6}[A-Z0-9]{3}$`)

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Solicitud formulario de alta tal como llega del panel.
type Solicitud struct {
	Nombre            string `json:"nombre"`
	RFC               string `json:"rfc"`
	ContactoEmail     string `json:"contacto_email"`
	ContactoTel       string `json:"contacto_tel"`
	Direccion         string `json:"direccion"`
	Password          string `json:"password"`
	ConfirmarPassword string `json:"confirmar_password"`
}

// ErroresValidacion lista de problemas del formulario, uno por campo fallido.
// Se reportan todos juntos, no solo el primero.
type ErroresValidacion struct {
	Errores []string `json:"errores"`
}

func (e *ErroresValidacion) Error() string {
	return "formulario inválido: " + strings.Join(e.Errores, "; ")
}

// API puerto hacia el recurso /clientes del backend.
type API interface {
	Crear(ctx context.Context, in entity.NuevoCliente) (*entity.Cliente, error)
}

// UseCase alta de clientes.
type UseCase struct {
	api API
}

// NewUseCase construye el caso de uso.
func NewUseCase(api API) *UseCase {
	return &UseCase{api: api}
}

// Validar revisa cada campo y acumula los errores encontrados. Devuelve nil
// cuando el formulario está completo.
func Validar(s Solicitud) *ErroresValidacion {
	var errores []string

	if len(strings.TrimSpace(s.Nombre)) < 3 {
		errores = append(errores, "el nombre debe tener al menos 3 caracteres")
	}
	rfc := strings.ToUpper(strings.TrimSpace(s.RFC))
	if len(rfc) != 12 || !reRFCEmpresa.MatchString(rfc) {
		errores = append(errores, "el RFC debe tener 12 caracteres con formato válido")
	}
	if !reEmail.MatchString(strings.TrimSpace(s.ContactoEmail)) {
		errores = append(errores, "el email no tiene un formato válido")
	}
	if len(soloDigitos(s.ContactoTel)) < 10 {
		errores = append(errores, "el teléfono debe tener al menos 10 dígitos")
	}
	if len(s.Password) < 6 {
		errores = append(errores, "la contraseña debe tener al menos 6 caracteres")
	}
	if s.Password != s.ConfirmarPassword {
		errores = append(errores, "las contraseñas no coinciden")
	}

	if len(errores) > 0 {
		return &ErroresValidacion{Errores: errores}
	}
	return nil
}

// Registrar valida el formulario, hashea la contraseña con bcrypt y reenvía
// el alta al backend. La contraseña en claro no sale de este método.
func (uc *UseCase) Registrar(ctx context.Context, s Solicitud) (*entity.Cliente, error) {
	if errs := Validar(s); errs != nil {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return uc.api.Crear(ctx, entity.NuevoCliente{
		Nombre:        strings.TrimSpace(s.Nombre),
		RFC:           strings.ToUpper(strings.TrimSpace(s.RFC)),
		ContactoEmail: strings.TrimSpace(s.ContactoEmail),
		ContactoTel:   strings.TrimSpace(s.ContactoTel),
		Direccion:     strings.TrimSpace(s.Direccion),
		PasswordHash:  string(hash),
	})
}

func soloDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
