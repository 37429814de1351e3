package dto

import "github.com/shopspring/decimal"

// ProductForm valores del formulario de producto.
// Stock solo se envía si se informó (stock inicial al crear).
type ProductForm struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       *int            `json:"stock,omitempty" validate:"omitempty,min=0"`
	CategoryID  string          `json:"categoryId" validate:"required"`
}

// ProductRow fila de la tabla de productos.
type ProductRow struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"` // "-" si está vacía
	Price         decimal.Decimal `json:"price"`
	PriceLabel    string          `json:"priceLabel"`
	Stock         int             `json:"stock"`
	LowStock      bool            `json:"lowStock"`
	CategoryID    string          `json:"categoryId"`
	CategoryLabel string          `json:"categoryLabel"`
}

// ProductsView estado completo de la pantalla de productos.
type ProductsView struct {
	Items             []ProductRow `json:"items"`
	Categories        []Option     `json:"categories"`
	Loading           bool         `json:"loading"`
	LoadingCategories bool         `json:"loadingCategories"`
	Error             string       `json:"error,omitempty"`
	Form              FormStateDTO `json:"form"`
	Values            ProductForm  `json:"values"`
	// CanSubmit falso mientras hay una llamada en curso o no hay categorías.
	CanSubmit bool `json:"canSubmit"`
}
