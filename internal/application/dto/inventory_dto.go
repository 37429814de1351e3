package dto

import "github.com/jhoicas/neowarehouse/internal/domain/entity"

// MovementForm valores del formulario de movimiento.
type MovementForm struct {
	ProductID string              `json:"productId"`
	Type      entity.MovementType `json:"type"`
	Quantity  int                 `json:"quantity"`
	Reason    string              `json:"reason,omitempty"`
}

// MovementRow fila del historial de movimientos.
type MovementRow struct {
	ID            string              `json:"id"`
	ProductID     string              `json:"productId"`
	ProductName   string              `json:"productName"`
	Type          entity.MovementType `json:"type"`
	TypeLabel     string              `json:"typeLabel"`
	Tone          string              `json:"tone"`
	Quantity      int                 `json:"quantity"`
	QuantityLabel string              `json:"quantityLabel"` // "+3", "-3" o "3"
	Reason        string              `json:"reason,omitempty"`
	CreatedAt     string              `json:"createdAt"`
}

// InventoryView estado completo de la pantalla de inventario.
type InventoryView struct {
	Items          []MovementRow `json:"items"`
	Products       []Option      `json:"products"`
	Types          []Option      `json:"types"`
	Loading        bool          `json:"loading"`
	Error          string        `json:"error,omitempty"`
	Form           FormStateDTO  `json:"form"`
	Values         MovementForm  `json:"values"`
	ReasonRequired bool          `json:"reasonRequired"`
}
