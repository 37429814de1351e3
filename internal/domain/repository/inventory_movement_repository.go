package repository

import (
	"context"

	"github.com/jhoicas/neowarehouse/internal/domain/entity"
)

// InventoryMovementRepository define el puerto hacia los movimientos de inventario.
// Los movimientos son inmutables: solo se listan y se crean.
type InventoryMovementRepository interface {
	List(ctx context.Context) ([]entity.InventoryMovement, error)
	Create(ctx context.Context, in entity.NewInventoryMovement) (*entity.InventoryMovement, error)
}
