package controller_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/jhoicas/neowarehouse/internal/application/controller"
	"github.com/jhoicas/neowarehouse/internal/infrastructure/apiclient"
	"github.com/jhoicas/neowarehouse/internal/testutil/fakeapi"
	"github.com/jhoicas/neowarehouse/pkg/locale"
)

// stack controladores conectados al servicio falso por HTTP real.
type stack struct {
	api        *fakeapi.Server
	products   *controller.ProductsController
	categories *controller.CategoriesController
	inventory  *controller.InventoryController
	dashboard  *controller.DashboardController
}

func newStack(t *testing.T) *stack {
	t.Helper()
	srv, ts := fakeapi.Start(t)
	client := apiclient.New(apiclient.Config{BaseURL: ts.URL}, zerolog.Nop())
	f := locale.Default()
	return &stack{
		api:        srv,
		products:   controller.NewProductsController(client.Products(), client.Categories(), f, zerolog.Nop()),
		categories: controller.NewCategoriesController(client.Categories(), zerolog.Nop()),
		inventory:  controller.NewInventoryController(client.InventoryMovements(), client.Products(), zerolog.Nop()),
		dashboard:  controller.NewDashboardController(client.Products(), f, zerolog.Nop()),
	}
}

func intPtr(n int) *int { return &n }

func rejectAll(string) bool { return false }
