package controller_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/neowarehouse/internal/application/controller"
	"github.com/jhoicas/neowarehouse/internal/application/dto"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
)

func TestDashboard_CategoriaProductoYEstadisticas(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	s.categories.OpenCreate()
	require.NoError(t, s.categories.SetForm(dto.CategoryForm{Name: "Electronics"}))
	cat, err := s.categories.Submit(ctx)
	require.NoError(t, err)

	require.NoError(t, s.products.OpenCreate(ctx))
	require.NoError(t, s.products.SetForm(dto.ProductForm{Name: "Drill", Price: decimal.NewFromInt(50), Stock: intPtr(5), CategoryID: cat.ID}))
	_, err = s.products.Submit(ctx)
	require.NoError(t, err)

	require.NoError(t, s.dashboard.Load(ctx))
	v := s.dashboard.View()
	assert.Equal(t, 1, v.Stats.TotalProducts)
	assert.Equal(t, 5, v.Stats.TotalStock)
	assert.Equal(t, 1, v.Stats.LowStockProducts)
	assert.True(t, v.Stats.TotalInventoryValue.Equal(decimal.NewFromInt(250)))
	assert.True(t, v.Stats.AveragePrice.Equal(decimal.NewFromInt(50)))

	require.Len(t, v.Cards, 4)
	assert.Equal(t, "Valor Total del Inventario", v.Cards[0].Title)
	assert.Equal(t, "$250", v.Cards[0].Value)
	assert.Equal(t, controller.ToneDanger, v.Cards[3].Tone)
}

func TestDashboard_SinStockBajoTonoNeutro(t *testing.T) {
	s := newStack(t)
	s.api.SeedProducts(
		entity.Product{ID: "a", Name: "A", Price: decimal.NewFromInt(1000), Stock: 10, CategoryID: "c"},
		entity.Product{ID: "b", Name: "B", Price: decimal.NewFromInt(2000), Stock: 600, CategoryID: "c"},
	)
	require.NoError(t, s.dashboard.Load(context.Background()))

	v := s.dashboard.View()
	assert.Equal(t, 0, v.Stats.LowStockProducts)
	assert.Equal(t, controller.ToneNeutral, v.Cards[3].Tone)
	assert.Equal(t, "$1.210.000", v.Cards[0].Value)
	assert.Equal(t, "610", v.Cards[2].Value)
}

func TestDashboard_FalloConservaUltimosDatos(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	seedDrill(s)
	require.NoError(t, s.dashboard.Load(ctx))

	s.api.FailNext(http.MethodGet, "/products", http.StatusServiceUnavailable)
	require.Error(t, s.dashboard.Load(ctx))

	v := s.dashboard.View()
	assert.Equal(t, "Error al cargar las estadísticas", v.Error)
	assert.Equal(t, 1, v.Stats.TotalProducts)
	assert.False(t, v.Loading)
}

func TestDashboard_ListaVacia(t *testing.T) {
	s := newStack(t)
	require.NoError(t, s.dashboard.Load(context.Background()))
	v := s.dashboard.View()
	assert.Equal(t, 0, v.Stats.TotalProducts)
	assert.True(t, v.Stats.AveragePrice.IsZero())
	assert.Equal(t, "$0", v.Cards[0].Value)
}
