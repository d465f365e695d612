// Package auth implementa el inicio de sesión de demostración del panel:
// cualquier usuario entra con un nombre y un rol, sin verificación de
// credenciales, y recibe un token firmado para la sesión.
package auth

import (
	"fmt"
	"strings"

	"github.com/smartstock/panel-api/internal/domain"
	"github.com/smartstock/panel-api/pkg/jwt"
)

// Roles aceptados por el panel.
const (
	RolAdmin   = "admin"
	RolUsuario = "user"
)

// Sesion resultado de un login exitoso.
type Sesion struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
}

// UseCase emisión de sesiones del panel.
type UseCase struct {
	secret     string
	issuer     string
	expMinutes int
}

// NewUseCase construye el caso de uso con los parámetros de firma.
func NewUseCase(secret, issuer string, expMinutes int) *UseCase {
	return &UseCase{secret: secret, issuer: issuer, expMinutes: expMinutes}
}

// Login acepta cualquier usuario no vacío con rol admin o user. No hay
// verificación de contraseña: el backend de demostración no la exige.
func (uc *UseCase) Login(username, rol string) (*Sesion, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: el nombre de usuario es requerido", domain.ErrInvalidInput)
	}
	if rol != RolAdmin && rol != RolUsuario {
		return nil, fmt.Errorf("%w: rol inválido, usa admin o user", domain.ErrInvalidInput)
	}

	token, err := jwt.Generate(uc.secret, username, rol, uc.issuer, uc.expMinutes)
	if err != nil {
		return nil, fmt.Errorf("generando token: %w", err)
	}
	return &Sesion{Token: token, Username: username, Rol: rol}, nil
}
