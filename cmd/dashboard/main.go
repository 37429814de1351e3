package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/neowarehouse/internal/application/controller"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
	"github.com/jhoicas/neowarehouse/internal/infrastructure/apiclient"
	"github.com/jhoicas/neowarehouse/internal/infrastructure/report"
	"github.com/jhoicas/neowarehouse/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/neowarehouse/internal/interfaces/http"
	"github.com/jhoicas/neowarehouse/pkg/config"
	"github.com/jhoicas/neowarehouse/pkg/locale"
	"github.com/jhoicas/neowarehouse/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando dashboard")

	ctx := context.Background()

	db, err := sqlite.Open(cfg.Prefs.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Prefs.DBPath).Msg("abrir preferencias")
	}
	defer db.Close()
	if err := sqlite.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrar preferencias")
	}
	prefsRepo := sqlite.NewPreferenceRepository(db)

	client := apiclient.New(apiclient.Config{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.Timeout,
	}, log.Component("apiclient"))

	f := locale.Default()
	productsRepo := client.Products()
	categoriesRepo := client.Categories()
	movementsRepo := client.InventoryMovements()

	dashboardCtrl := controller.NewDashboardController(productsRepo, f, log.Zerolog())
	productsCtrl := controller.NewProductsController(productsRepo, categoriesRepo, f, log.Zerolog())
	categoriesCtrl := controller.NewCategoriesController(categoriesRepo, log.Zerolog())
	inventoryCtrl := controller.NewInventoryController(movementsRepo, productsRepo, log.Zerolog())

	fallback, ok := entity.ParseTheme(cfg.Prefs.PrefersColorScheme)
	if !ok {
		fallback = entity.ThemeLight
	}
	themeSvc := controller.NewThemeService(ctx, prefsRepo, fallback, log.Zerolog())

	reportSvc := controller.NewReportService(productsRepo, categoriesRepo, report.NewRenderer(cfg.App.Name), f, log.Zerolog())

	// Carga inicial: un fallo queda en la vista y se reintenta con /reload.
	loadCtx, cancelLoad := context.WithTimeout(ctx, 15*time.Second)
	_ = dashboardCtrl.Load(loadCtx)
	_ = productsCtrl.Load(loadCtx)
	_ = productsCtrl.LoadCategories(loadCtx)
	_ = categoriesCtrl.Load(loadCtx)
	_ = inventoryCtrl.Load(loadCtx)
	cancelLoad()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NeoWarehouse Dashboard",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "theme": themeSvc.Current()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Dashboard:  dashboardCtrl,
		Products:   productsCtrl,
		Categories: categoriesCtrl,
		Inventory:  inventoryCtrl,
		Theme:      themeSvc,
		Reports:    reportSvc,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("dashboard detenido")
}
