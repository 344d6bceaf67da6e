package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidLocation    = errors.New("Valid GPS location is required. Please ensure your GPS is turned on.")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("Invalid credentials")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrNoOpenSession: clock-out sin un registro abierto para el empleado.
	ErrNoOpenSession = errors.New("no active clock-in record found")
	// ErrSessionAlreadyOpen: clock-in con un registro abierto y política "reject".
	ErrSessionAlreadyOpen = errors.New("el empleado ya tiene una jornada abierta")
)
