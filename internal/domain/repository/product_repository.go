package repository

import (
	"context"

	"github.com/jhoicas/neowarehouse/internal/domain/entity"
)

// ProductRepository define el puerto hacia el recurso remoto de productos (DIP).
// El servicio remoto es la fuente de verdad; no hay caché en esta capa.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, in entity.NewProduct) (*entity.Product, error)
	Update(ctx context.Context, id string, in entity.ProductChanges) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
