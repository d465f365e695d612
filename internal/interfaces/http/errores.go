package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/panel-api/internal/application/dto"
	"github.com/smartstock/panel-api/internal/domain"
	"github.com/smartstock/panel-api/internal/infrastructure/backend"
)

// responderError traduce errores de dominio y del backend a la respuesta
// HTTP estándar.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrTicketCerrado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TICKET_CERRADO", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrBackendUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: "el backend SmartStock no responde"})
	}

	// Los rechazos del backend conservan su status original.
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(dto.ErrorResponse{Code: "BACKEND", Message: apiErr.Mensaje})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
