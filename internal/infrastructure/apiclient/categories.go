package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/neowarehouse/internal/domain/entity"
	"github.com/jhoicas/neowarehouse/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoriesResource)(nil)

// CategoriesResource acceso a /categories.
type CategoriesResource struct {
	c *Client
}

type categoryBody struct {
	Name string `json:"name"`
}

// List GET /categories.
func (r *CategoriesResource) List(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := r.c.do(ctx, "categories.list", http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Category{}
	}
	return out, nil
}

// Create POST /categories {name}.
func (r *CategoriesResource) Create(ctx context.Context, name string) (*entity.Category, error) {
	var out entity.Category
	if err := r.c.do(ctx, "categories.create", http.MethodPost, "/categories", categoryBody{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /categories/{id} {name}.
func (r *CategoriesResource) Update(ctx context.Context, id, name string) (*entity.Category, error) {
	var out entity.Category
	path := "/categories/" + url.PathEscape(id)
	if err := r.c.do(ctx, "categories.update", http.MethodPut, path, categoryBody{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /categories/{id}.
func (r *CategoriesResource) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, "categories.delete", http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil)
}
