package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/neowarehouse/internal/application/dto"
	"github.com/jhoicas/neowarehouse/internal/domain"
)

var validate = validator.New()

// fieldRule traduce un campo del struct al error de dominio que se muestra.
// El orden define la prioridad cuando fallan varios campos a la vez.
type fieldRule struct {
	field string // nombre del campo en el struct
	key   string // nombre en el JSON del formulario
	err   error
}

var productRules = []fieldRule{
	{field: "CategoryID", key: "categoryId", err: domain.ErrCategoryRequired},
	{field: "Name", key: "name", err: domain.ErrNameRequired},
	{field: "Stock", key: "stock", err: domain.ErrInvalidStock},
}

var categoryRules = []fieldRule{
	{field: "Name", key: "name", err: domain.ErrNameRequired},
}

func firstFieldError(err error, rules []fieldRule) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("", domain.ErrInvalidInput)
	}
	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.StructField()] = true
	}
	for _, r := range rules {
		if failed[r.field] {
			return domain.NewValidationError(r.key, r.err)
		}
	}
	return domain.NewValidationError(verrs[0].Field(), domain.ErrInvalidInput)
}

// normalizeProductForm recorta espacios de los campos de texto.
func normalizeProductForm(f dto.ProductForm) dto.ProductForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.CategoryID = strings.TrimSpace(f.CategoryID)
	return f
}

// validateProductForm chequeos de campos obligatorios antes de enviar un producto.
func validateProductForm(f dto.ProductForm) error {
	if err := validate.Struct(f); err != nil {
		return firstFieldError(err, productRules)
	}
	if f.Price.IsNegative() {
		return domain.NewValidationError("price", domain.ErrInvalidPrice)
	}
	return nil
}

// validateCategoryForm la categoría solo exige nombre.
func validateCategoryForm(f dto.CategoryForm) error {
	if err := validate.Struct(f); err != nil {
		return firstFieldError(err, categoryRules)
	}
	return nil
}
