package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/neowarehouse/internal/domain/entity"
	"github.com/jhoicas/neowarehouse/internal/domain/repository"
)

// Verificar en tiempo de compilación que ProductsResource implementa ProductRepository.
var _ repository.ProductRepository = (*ProductsResource)(nil)

// ProductsResource acceso a /products.
type ProductsResource struct {
	c *Client
}

// List GET /products.
func (r *ProductsResource) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := r.c.do(ctx, "products.list", http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Product{}
	}
	return out, nil
}

// Create POST /products.
func (r *ProductsResource) Create(ctx context.Context, in entity.NewProduct) (*entity.Product, error) {
	var out entity.Product
	if err := r.c.do(ctx, "products.create", http.MethodPost, "/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /products/{id}. Solo viajan los campos no nulos de in.
func (r *ProductsResource) Update(ctx context.Context, id string, in entity.ProductChanges) (*entity.Product, error) {
	var out entity.Product
	if err := r.c.do(ctx, "products.update", http.MethodPut, "/products/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /products/{id}.
func (r *ProductsResource) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, "products.delete", http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}
