package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/neowarehouse/internal/domain"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
	"github.com/jhoicas/neowarehouse/internal/infrastructure/apiclient"
	"github.com/jhoicas/neowarehouse/internal/testutil/fakeapi"
	"github.com/jhoicas/neowarehouse/pkg/requestid"
)

func newClient(t *testing.T) (*apiclient.Client, *fakeapi.Server) {
	t.Helper()
	srv, ts := fakeapi.Start(t)
	c := apiclient.New(apiclient.Config{BaseURL: ts.URL + "/", Token: "tok-123"}, zerolog.Nop())
	return c, srv
}

func ptr[T any](v T) *T { return &v }

func TestCategories_CRUD(t *testing.T) {
	c, srv := newClient(t)
	ctx := context.Background()

	list, err := c.Categories().List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list, "una lista vacía no debe ser nil")
	assert.Empty(t, list)

	created, err := c.Categories().Create(ctx, "Electronics")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "el servicio asigna el id")
	assert.Equal(t, "Electronics", created.Name)

	req := srv.LastRequest(http.MethodPost, "/categories")
	require.NotNil(t, req)
	assert.Equal(t, map[string]any{"name": "Electronics"}, req.Body)
	assert.Equal(t, "Bearer tok-123", req.Auth)
	assert.NotEmpty(t, req.RequestID)

	updated, err := c.Categories().Update(ctx, created.ID, "Electrónica")
	require.NoError(t, err)
	assert.Equal(t, "Electrónica", updated.Name)

	require.NoError(t, c.Categories().Delete(ctx, created.ID))
	list, err = c.Categories().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProducts_CreateEnviaNumerosJSON(t *testing.T) {
	c, srv := newClient(t)

	p, err := c.Products().Create(context.Background(), entity.NewProduct{
		Name:       "Drill",
		Price:      decimal.NewFromInt(50),
		Stock:      ptr(5),
		CategoryID: "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)
	assert.True(t, decimal.NewFromInt(50).Equal(p.Price))

	req := srv.LastRequest(http.MethodPost, "/products")
	require.NotNil(t, req)
	assert.Equal(t, float64(50), req.Body["price"], "price viaja como número")
	assert.Equal(t, float64(5), req.Body["stock"])
	assert.NotContains(t, req.Body, "description", "campo opcional vacío se omite")
}

func TestProducts_UpdateParcialSoloEnviaClavesPresentes(t *testing.T) {
	c, srv := newClient(t)
	srv.SeedProducts(entity.Product{ID: "p1", Name: "Drill", Price: decimal.NewFromInt(50), Stock: 5, CategoryID: "c1"})

	out, err := c.Products().Update(context.Background(), "p1", entity.ProductChanges{Name: ptr("Taladro")})
	require.NoError(t, err)

	req := srv.LastRequest(http.MethodPut, "/products/p1")
	require.NotNil(t, req)
	assert.Equal(t, map[string]any{"name": "Taladro"}, req.Body)
	assert.Equal(t, "Taladro", out.Name)
	assert.Equal(t, 5, out.Stock, "los campos omitidos quedan intactos")
	assert.Equal(t, "c1", out.CategoryID)
}

func TestProducts_DeleteYList(t *testing.T) {
	c, srv := newClient(t)
	srv.SeedProducts(entity.Product{ID: "p1", Name: "A"}, entity.Product{ID: "p2", Name: "B"})

	require.NoError(t, c.Products().Delete(context.Background(), "p1"))

	list, err := c.Products().List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p2", list[0].ID)
}

func TestMovements_CreateYList(t *testing.T) {
	c, srv := newClient(t)
	srv.SeedProducts(entity.Product{ID: "p1", Name: "Drill", Stock: 5})

	m, err := c.InventoryMovements().Create(context.Background(), entity.NewInventoryMovement{
		ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeOUT, m.Type)
	require.NotNil(t, m.Product)
	assert.Equal(t, "Drill", m.Product.Name)

	req := srv.LastRequest(http.MethodPost, "/inventory-movements")
	require.NotNil(t, req)
	assert.NotContains(t, req.Body, "reason")

	list, err := c.InventoryMovements().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTransportError_StatusHTTP(t *testing.T) {
	c, srv := newClient(t)
	srv.FailNext(http.MethodGet, "/products", http.StatusServiceUnavailable)

	_, err := c.Products().List(context.Background())
	require.Error(t, err)

	var te *domain.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusServiceUnavailable, te.StatusCode)
	assert.Equal(t, "products.list", te.Op)
	assert.Contains(t, te.Body, "fallo simulado")
	assert.False(t, domain.IsValidation(err))

	// sin reintento: la siguiente llamada funciona con normalidad
	_, err = c.Products().List(context.Background())
	assert.NoError(t, err)
}

func TestTransportError_Red(t *testing.T) {
	c := apiclient.New(apiclient.Config{BaseURL: "http://127.0.0.1:1"}, zerolog.Nop())

	err := c.Categories().Delete(context.Background(), "x")
	require.Error(t, err)

	var te *domain.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 0, te.StatusCode)
	assert.NotNil(t, errors.Unwrap(err), "el error subyacente se conserva")
}

func TestTransportError_ContextoCancelado(t *testing.T) {
	c, _ := newClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Products().List(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, domain.IsTransport(err))
}

func TestClient_ReenviaRequestIDDelContexto(t *testing.T) {
	c, srv := newClient(t)
	ctx := requestid.NewContext(context.Background(), "abc-123")

	_, err := c.Products().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", srv.LastRequest(http.MethodGet, "/products").RequestID)

	_, err = c.Products().List(context.Background())
	require.NoError(t, err)
	fresh := srv.LastRequest(http.MethodGet, "/products").RequestID
	assert.NotEmpty(t, fresh)
	assert.NotEqual(t, "abc-123", fresh)
}

func TestClient_CuerpoDeErrorLargoNoParteRunas(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("x" + strings.Repeat("ñ", 400)))
	}))
	t.Cleanup(ts.Close)
	c := apiclient.New(apiclient.Config{BaseURL: ts.URL}, zerolog.Nop())

	_, err := c.Products().List(context.Background())
	var te *domain.TransportError
	require.True(t, errors.As(err, &te))
	assert.True(t, utf8.ValidString(te.Body))
	assert.LessOrEqual(t, len(te.Body), 512)
	assert.Equal(t, 511, len(te.Body))
}
