package controller_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/neowarehouse/internal/application/dto"
	"github.com/jhoicas/neowarehouse/internal/domain"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
)

func seedDrill(s *stack) {
	s.api.SeedProducts(entity.Product{ID: "p1", Name: "Drill", Price: decimal.NewFromInt(50), Stock: 5, CategoryID: "c1"})
}

func TestInventory_SalidaMuestraCantidadNegativa(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	seedDrill(s)
	require.NoError(t, s.inventory.Load(ctx))

	s.inventory.OpenCreate()
	v := s.inventory.View()
	assert.Equal(t, entity.MovementTypeIN, v.Values.Type)
	assert.Equal(t, 1, v.Values.Quantity)
	assert.Equal(t, []dto.Option{{ID: "p1", Label: "Drill"}}, v.Products)
	assert.Len(t, v.Types, 3)

	require.NoError(t, s.inventory.SetForm(dto.MovementForm{ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 3}))
	created, err := s.inventory.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeOUT, created.Type)

	v = s.inventory.View()
	assert.Equal(t, "closed", v.Form.Mode)
	require.Len(t, v.Items, 1)
	row := v.Items[0]
	assert.Equal(t, "-3", row.QuantityLabel)
	assert.Equal(t, "Salida", row.TypeLabel)
	assert.Equal(t, "Drill", row.ProductName)

	p, ok := s.api.Product("p1")
	require.True(t, ok)
	assert.Equal(t, 2, p.Stock, "el servicio remoto aplica el movimiento")
}

func TestInventory_ValidacionAntesDeLaRed(t *testing.T) {
	tests := []struct {
		name string
		form dto.MovementForm
		want error
	}{
		{"sin producto", dto.MovementForm{Type: entity.MovementTypeIN, Quantity: 1}, domain.ErrNoProductSelected},
		{"ajuste sin motivo", dto.MovementForm{ProductID: "p1", Type: entity.MovementTypeADJUSTMENT, Quantity: 4, Reason: "  "}, domain.ErrReasonRequired},
		{"tipo inválido", dto.MovementForm{ProductID: "p1", Type: "TRANSFER", Quantity: 1}, domain.ErrInvalidMovementType},
		{"cantidad cero", dto.MovementForm{ProductID: "p1", Type: entity.MovementTypeIN}, domain.ErrInvalidQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStack(t)
			seedDrill(s)
			s.inventory.OpenCreate()
			require.NoError(t, s.inventory.SetForm(tt.form))

			_, err := s.inventory.Submit(context.Background())
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, domain.IsValidation(err))
			assert.Nil(t, s.api.LastRequest(http.MethodPost, "/inventory-movements"))
			assert.Equal(t, tt.want.Error(), s.inventory.View().Error)
		})
	}
}

func TestInventory_AjusteConMotivo(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	seedDrill(s)
	s.inventory.OpenCreate()
	require.NoError(t, s.inventory.SetForm(dto.MovementForm{ProductID: "p1", Type: entity.MovementTypeADJUSTMENT, Quantity: 12, Reason: "conteo físico"}))
	assert.True(t, s.inventory.View().ReasonRequired)

	_, err := s.inventory.Submit(ctx)
	require.NoError(t, err)

	row := s.inventory.View().Items[0]
	assert.Equal(t, "12", row.QuantityLabel)
	assert.Equal(t, "conteo físico", row.Reason)
	p, _ := s.api.Product("p1")
	assert.Equal(t, 12, p.Stock)
}

func TestInventory_RechazoDelServicio(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	seedDrill(s)
	s.inventory.OpenCreate()
	require.NoError(t, s.inventory.SetForm(dto.MovementForm{ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 99}))

	_, err := s.inventory.Submit(ctx)
	require.Error(t, err)
	assert.True(t, domain.IsTransport(err))
	v := s.inventory.View()
	assert.Equal(t, "Error al registrar el movimiento", v.Error)
	assert.Equal(t, "creating", v.Form.Mode)
}

func TestInventory_FalloAlCargarMovimientos(t *testing.T) {
	s := newStack(t)
	seedDrill(s)
	s.api.FailNext(http.MethodGet, "/inventory-movements", http.StatusInternalServerError)

	require.Error(t, s.inventory.Load(context.Background()))
	v := s.inventory.View()
	assert.Equal(t, "Error al cargar los movimientos", v.Error)
	assert.Len(t, v.Products, 1, "el selector carga aunque fallen los movimientos")
}
