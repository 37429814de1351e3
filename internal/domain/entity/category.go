package entity

// Category categoría de productos tal como la expone el servicio remoto.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// GetID devuelve el identificador asignado por el servicio remoto.
func (c Category) GetID() string { return c.ID }
