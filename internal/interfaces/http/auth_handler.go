package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/panel-api/internal/application/auth"
	"github.com/smartstock/panel-api/internal/application/dto"
)

// AuthHandler maneja el inicio de sesión del panel.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión de demostración
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Usuario y rol"
// @Success      200   {object}  auth.Sesion
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sesion, err := h.uc.Login(in.Username, in.Rol)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(sesion)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  La sesión vive en el token; el cliente lo descarta al salir.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":  "sesión cerrada",
		"username": GetUsername(c),
	})
}
