package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/neowarehouse/internal/domain/entity"
	"github.com/jhoicas/neowarehouse/internal/domain/inventory"
)

func TestResolveCategoryName(t *testing.T) {
	categories := []entity.Category{{ID: "c1", Name: "Tools"}}

	assert.Equal(t, "Tools", inventory.ResolveCategoryName("c1", categories))
	assert.Equal(t, "missing", inventory.ResolveCategoryName("missing", categories))
	assert.Equal(t, "c1", inventory.ResolveCategoryName("c1", nil))
}

func TestProductCategoryLabel(t *testing.T) {
	categories := []entity.Category{{ID: "c1", Name: "Tools"}}

	assert.Equal(t, "Herramientas", inventory.ProductCategoryLabel(
		entity.Product{CategoryID: "c1", CategoryName: "Herramientas"}, categories))
	assert.Equal(t, "Tools", inventory.ProductCategoryLabel(entity.Product{CategoryID: "c1"}, categories))
	// categoría eliminada: se muestra el id crudo
	assert.Equal(t, "c9", inventory.ProductCategoryLabel(entity.Product{CategoryID: "c9"}, categories))
}
