package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrConfirmationNeeded  = errors.New("se requiere confirmación")
	ErrFormClosed          = errors.New("el formulario no está abierto")
	ErrFormOpen            = errors.New("cierra el formulario antes de continuar")
	ErrSubmitInProgress    = errors.New("ya hay un guardado en curso")
	ErrNoProductSelected   = errors.New("debes seleccionar un producto")
	ErrReasonRequired      = errors.New("el motivo es obligatorio para un ajuste")
	ErrInvalidMovementType = errors.New("tipo de movimiento inválido")
	ErrInvalidQuantity     = errors.New("la cantidad debe ser mayor a cero")
	ErrCategoryRequired    = errors.New("debes seleccionar una categoría")
	ErrNameRequired        = errors.New("el nombre es obligatorio")
	ErrInvalidPrice        = errors.New("el precio no puede ser negativo")
	ErrInvalidStock        = errors.New("el stock no puede ser negativo")
	ErrInvalidTheme        = errors.New("tema inválido: usa light o dark")
	ErrThemeNotSaved       = errors.New("no se pudo guardar el tema")
)

// ValidationError precondición del cliente no cumplida antes de enviar al servicio remoto.
// Nunca se produce después de una llamada de red.
type ValidationError struct {
	Field string
	Err   error
}

// NewValidationError construye un ValidationError para el campo indicado.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// TransportError fallo de red o HTTP en una llamada al servicio remoto.
// StatusCode es 0 cuando no hubo respuesta (error de red).
type TransportError struct {
	Op         string
	Method     string
	Path       string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s %s: HTTP %d: %s", e.Op, e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsValidation indica si err (o alguno envuelto) es un ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsTransport indica si err (o alguno envuelto) es un TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
