package inventory

import (
	"strings"

	"github.com/jhoicas/neowarehouse/internal/domain"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
)

// MovementCandidate movimiento propuesto por el usuario, antes de enviarse.
type MovementCandidate struct {
	ProductID string
	Type      entity.MovementType
	Quantity  int
	Reason    string
}

// ValidateMovement aplica las reglas en orden y se detiene en la primera que falla:
//  1. debe haber un producto seleccionado;
//  2. un ADJUSTMENT exige motivo no vacío (tras recortar espacios);
//  3. el tipo debe ser IN, OUT o ADJUSTMENT;
//  4. la cantidad debe ser mayor a cero.
//
// No realiza ninguna mutación. Devuelve *domain.ValidationError.
func ValidateMovement(m MovementCandidate) error {
	if strings.TrimSpace(m.ProductID) == "" {
		return domain.NewValidationError("productId", domain.ErrNoProductSelected)
	}
	if m.Type == entity.MovementTypeADJUSTMENT && strings.TrimSpace(m.Reason) == "" {
		return domain.NewValidationError("reason", domain.ErrReasonRequired)
	}
	if !m.Type.Valid() {
		return domain.NewValidationError("type", domain.ErrInvalidMovementType)
	}
	if m.Quantity <= 0 {
		return domain.NewValidationError("quantity", domain.ErrInvalidQuantity)
	}
	return nil
}
