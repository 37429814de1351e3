package dto

// CategoryForm valores del formulario de categoría.
type CategoryForm struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CategoryRow fila de la tabla de categorías.
type CategoryRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// CategoriesView estado completo de la pantalla de categorías.
type CategoriesView struct {
	Items   []CategoryRow `json:"items"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
	Form    FormStateDTO  `json:"form"`
	Values  CategoryForm  `json:"values"`
}
