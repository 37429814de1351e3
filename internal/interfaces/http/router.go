package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/neowarehouse/internal/application/controller"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Dashboard  *controller.DashboardController
	Products   *controller.ProductsController
	Categories *controller.CategoriesController
	Inventory  *controller.InventoryController
	Theme      *controller.ThemeService
	Reports    *controller.ReportService
}

// Router registra las rutas del dashboard.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	api.Get("/dashboard", dashboardHandler.View)
	api.Post("/dashboard/reload", dashboardHandler.Reload)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Products)
	products.Get("/", productHandler.View)
	products.Post("/reload", productHandler.Reload)
	products.Post("/form/create", productHandler.OpenCreate)
	products.Post("/form/edit/:id", productHandler.OpenEdit)
	products.Put("/form", productHandler.SetForm)
	products.Post("/form/submit", productHandler.Submit)
	products.Delete("/form", productHandler.Close)
	products.Delete("/:id", productHandler.Delete)

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Categories)
	categories.Get("/", categoryHandler.View)
	categories.Post("/reload", categoryHandler.Reload)
	categories.Post("/form/create", categoryHandler.OpenCreate)
	categories.Post("/form/edit/:id", categoryHandler.OpenEdit)
	categories.Put("/form", categoryHandler.SetForm)
	categories.Post("/form/submit", categoryHandler.Submit)
	categories.Delete("/form", categoryHandler.Close)
	categories.Delete("/:id", categoryHandler.Delete)

	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Inventory)
	inv.Get("/", inventoryHandler.View)
	inv.Post("/reload", inventoryHandler.Reload)
	inv.Post("/form/create", inventoryHandler.OpenCreate)
	inv.Put("/form", inventoryHandler.SetForm)
	inv.Post("/form/submit", inventoryHandler.Submit)
	inv.Delete("/form", inventoryHandler.Close)

	themeHandler := NewThemeHandler(deps.Theme)
	api.Get("/theme", themeHandler.Get)
	api.Put("/theme", themeHandler.Set)
	api.Post("/theme/toggle", themeHandler.Toggle)

	if deps.Reports != nil {
		reports := api.Group("/reports")
		reportHandler := NewReportHandler(deps.Reports)
		reports.Get("/inventory.pdf", reportHandler.PDF)
		reports.Get("/inventory.xlsx", reportHandler.XLSX)
	}
}
