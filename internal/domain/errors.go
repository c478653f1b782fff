package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrParse           = errors.New("documento XML ilegible")
	ErrNumericFormat   = errors.New("formato numérico inválido")
	ErrServiceRejected = errors.New("el servicio rechazó la operación")
)

// IsRejection indica si err es un rechazo de negocio (el servicio se ejecutó y devolvió error)
// y no una falla de infraestructura (conexión, timeout, etc.).
func IsRejection(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range []error{ErrNotFound, ErrInvalidInput, ErrDuplicate, ErrConflict, ErrServiceRejected} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
