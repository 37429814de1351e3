package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// Stock lo muta el servicio remoto al registrar movimientos; aquí solo se lee.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName,omitempty"` // desnormalizado, opcional
	CreatedAt    string          `json:"createdAt"`
}

// GetID devuelve el identificador asignado por el servicio remoto.
func (p Product) GetID() string { return p.ID }

// NewProduct cuerpo de POST /products. Stock es el stock inicial (variante con stock).
type NewProduct struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       *int            `json:"stock,omitempty"`
	CategoryID  string          `json:"categoryId"`
}

// ProductChanges cuerpo de PUT /products/{id}. Solo se envían las claves no nulas;
// el servicio remoto deja intactos los campos omitidos.
type ProductChanges struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
}
