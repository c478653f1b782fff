package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-oagis/internal/domain"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// SignAccepted signo OAGIS que indica cantidad aceptada.
const SignAccepted = "+"

// ResolveQuantity convierte la magnitud textual y el signo de una línea en el par
// aceptado/rechazado. Con signo "+" la magnitud es aceptada; cualquier otro signo
// (incluido vacío) la marca como rechazada. Una magnitud negativa se trata como formato
// numérico inválido: la dirección la da el signo, no el valor.
func ResolveQuantity(magnitude, sign string) (entity.QuantitySplit, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(magnitude))
	if err != nil {
		return entity.QuantitySplit{}, fmt.Errorf("%w: valor %q", domain.ErrNumericFormat, magnitude)
	}
	if value.IsNegative() {
		return entity.QuantitySplit{}, fmt.Errorf("%w: valor negativo %q", domain.ErrNumericFormat, magnitude)
	}
	if sign == SignAccepted {
		return entity.QuantitySplit{Accepted: value, Rejected: decimal.Zero}, nil
	}
	return entity.QuantitySplit{Accepted: decimal.Zero, Rejected: value}, nil
}
