package repository

import (
	"context"

	"github.com/jhoicas/neowarehouse/internal/domain/entity"
)

// CategoryRepository define el puerto hacia el recurso remoto de categorías (DIP).
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, id, name string) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
