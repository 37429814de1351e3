package inventory

import "github.com/jhoicas/neowarehouse/internal/domain/entity"

// ResolveCategoryName devuelve el nombre de la categoría con ese id.
// Si no existe (categoría eliminada o lista desactualizada) devuelve el id tal cual:
// se degrada la presentación, no es un error.
func ResolveCategoryName(categoryID string, categories []entity.Category) string {
	for _, c := range categories {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return categoryID
}

// ProductCategoryLabel prefiere el nombre desnormalizado que envía el servicio y,
// si falta, resuelve contra la lista local de categorías.
func ProductCategoryLabel(p entity.Product, categories []entity.Category) string {
	if p.CategoryName != "" {
		return p.CategoryName
	}
	return ResolveCategoryName(p.CategoryID, categories)
}
