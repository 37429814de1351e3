package entity

import "strings"

// MovementType tipo de movimiento de inventario. Conjunto cerrado.
type MovementType string

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         MovementType = "IN"         // entrada: suma al stock
	MovementTypeOUT        MovementType = "OUT"        // salida: resta del stock
	MovementTypeADJUSTMENT MovementType = "ADJUSTMENT" // ajuste: corrige el stock, requiere motivo
)

// MovementTypes lista los tipos válidos en el orden en que se ofrecen al usuario.
var MovementTypes = []MovementType{MovementTypeIN, MovementTypeOUT, MovementTypeADJUSTMENT}

// Valid indica si t pertenece al conjunto cerrado de tipos.
func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJUSTMENT:
		return true
	}
	return false
}

// ParseMovementType normaliza s (mayúsculas, sin espacios) y valida el tipo.
func ParseMovementType(s string) (MovementType, bool) {
	t := MovementType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.Valid()
}

// MovementProduct instantánea desnormalizada del producto en un movimiento.
type MovementProduct struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// InventoryMovement registro inmutable de un cambio de stock sobre un producto.
type InventoryMovement struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	Type      MovementType     `json:"type"`
	Quantity  int              `json:"quantity"`
	Reason    string           `json:"reason,omitempty"`
	CreatedAt string           `json:"createdAt"`
	Product   *MovementProduct `json:"product,omitempty"`
}

// GetID devuelve el identificador asignado por el servicio remoto.
func (m InventoryMovement) GetID() string { return m.ID }

// NewInventoryMovement cuerpo de POST /inventory-movements.
type NewInventoryMovement struct {
	ProductID string       `json:"productId"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Reason    string       `json:"reason,omitempty"`
}
