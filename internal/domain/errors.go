package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrBackendUnavailable = errors.New("backend no disponible")
	ErrSinRepartidores    = errors.New("no hay repartidores disponibles")
	ErrTicketCerrado      = errors.New("el ticket está cerrado")
)
