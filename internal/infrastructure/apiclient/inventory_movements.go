package apiclient

import (
	"context"
	"net/http"

	"github.com/jhoicas/neowarehouse/internal/domain/entity"
	"github.com/jhoicas/neowarehouse/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementsResource)(nil)

// InventoryMovementsResource acceso a /inventory-movements (solo listar y crear).
type InventoryMovementsResource struct {
	c *Client
}

// List GET /inventory-movements.
func (r *InventoryMovementsResource) List(ctx context.Context) ([]entity.InventoryMovement, error) {
	var out []entity.InventoryMovement
	if err := r.c.do(ctx, "movements.list", http.MethodGet, "/inventory-movements", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.InventoryMovement{}
	}
	return out, nil
}

// Create POST /inventory-movements. La mutación del stock del producto la hace el servicio remoto.
func (r *InventoryMovementsResource) Create(ctx context.Context, in entity.NewInventoryMovement) (*entity.InventoryMovement, error) {
	var out entity.InventoryMovement
	if err := r.c.do(ctx, "movements.create", http.MethodPost, "/inventory-movements", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
