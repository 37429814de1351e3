package controller_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/neowarehouse/internal/application/controller"
	"github.com/jhoicas/neowarehouse/internal/application/dto"
	"github.com/jhoicas/neowarehouse/internal/domain"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
)

func TestCategories_CicloCompleto(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	require.NoError(t, s.categories.Load(ctx))
	assert.Empty(t, s.categories.View().Items)

	s.categories.OpenCreate()
	require.NoError(t, s.categories.SetForm(dto.CategoryForm{Name: "Electronics"}))
	created, err := s.categories.Submit(ctx)
	require.NoError(t, err)

	require.NoError(t, s.categories.OpenEdit(created.ID))
	assert.Equal(t, "Electronics", s.categories.View().Values.Name)
	require.NoError(t, s.categories.SetForm(dto.CategoryForm{Name: "Electrónica"}))
	_, err = s.categories.Submit(ctx)
	require.NoError(t, err)

	v := s.categories.View()
	assert.Equal(t, "closed", v.Form.Mode)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "Electrónica", v.Items[0].Name)

	require.NoError(t, s.categories.Delete(ctx, created.ID, controller.Confirmed))
	assert.Empty(t, s.categories.Items())
}

func TestCategories_NombreObligatorio(t *testing.T) {
	s := newStack(t)
	s.categories.OpenCreate()
	require.NoError(t, s.categories.SetForm(dto.CategoryForm{Name: "  "}))

	_, err := s.categories.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrNameRequired)
	assert.Nil(t, s.api.LastRequest(http.MethodPost, "/categories"))
}

func TestCategories_FalloAlActualizar(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.api.SeedCategories(entity.Category{ID: "c1", Name: "Tools"})
	require.NoError(t, s.categories.Load(ctx))

	require.NoError(t, s.categories.OpenEdit("c1"))
	require.NoError(t, s.categories.SetForm(dto.CategoryForm{Name: "Herramientas"}))
	s.api.FailNext(http.MethodPut, "/categories/c1", http.StatusInternalServerError)

	_, err := s.categories.Submit(ctx)
	require.Error(t, err)
	v := s.categories.View()
	assert.Equal(t, "Error al actualizar la categoría", v.Error)
	assert.Equal(t, "editing", v.Form.Mode)
	assert.Equal(t, "Tools", v.Items[0].Name)
}

func TestCategories_EliminarSinConfirmar(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.api.SeedCategories(entity.Category{ID: "c1", Name: "Tools"})
	require.NoError(t, s.categories.Load(ctx))

	assert.ErrorIs(t, s.categories.Delete(ctx, "c1", nil), domain.ErrConfirmationNeeded)
	assert.Len(t, s.categories.Items(), 1)
}

func TestCategories_EditarDesconocida(t *testing.T) {
	s := newStack(t)
	assert.ErrorIs(t, s.categories.OpenEdit("x"), domain.ErrNotFound)
}

func TestCategories_CargaAnteriorNoPisaCreacion(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	gate := s.api.Hold(http.MethodGet, "/categories")
	slow := make(chan error, 1)
	go func() { slow <- s.categories.Load(ctx) }()
	require.Eventually(t, func() bool {
		return s.api.LastRequest(http.MethodGet, "/categories") != nil
	}, 2*time.Second, 5*time.Millisecond)

	s.categories.OpenCreate()
	require.NoError(t, s.categories.SetForm(dto.CategoryForm{Name: "Electronics"}))
	created, err := s.categories.Submit(ctx)
	require.NoError(t, err)

	s.api.SeedCategories()
	close(gate)
	require.NoError(t, <-slow)

	items := s.categories.Items()
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
}

func TestCategories_CargaAnteriorNoRestauraEliminada(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	c1 := entity.Category{ID: "c1", Name: "Electronics"}
	s.api.SeedCategories(c1)
	require.NoError(t, s.categories.Load(ctx))

	gate := s.api.Hold(http.MethodGet, "/categories")
	slow := make(chan error, 1)
	go func() { slow <- s.categories.Load(ctx) }()
	require.Eventually(t, func() bool {
		return len(s.api.Requests()) >= 2
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, s.categories.Delete(ctx, "c1", controller.Confirmed))

	s.api.SeedCategories(c1)
	close(gate)
	require.NoError(t, <-slow)

	assert.Empty(t, s.categories.Items())
}
