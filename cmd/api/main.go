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

	_ "github.com/jhoicas/dolphnet-api/docs"
	appanalytics "github.com/jhoicas/dolphnet-api/internal/application/analytics"
	"github.com/jhoicas/dolphnet-api/internal/application/auth"
	"github.com/jhoicas/dolphnet-api/internal/application/notify"
	"github.com/jhoicas/dolphnet-api/internal/application/usecase"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	infraai "github.com/jhoicas/dolphnet-api/internal/infrastructure/ai"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/memory"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/dolphnet-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/dolphnet-api/internal/interfaces/http"
	"github.com/jhoicas/dolphnet-api/pkg/config"
	"github.com/jhoicas/dolphnet-api/pkg/logger"
)

// @title                       DolphNet API
// @version                     1.0
// @description                 Plataforma demo de e-commerce de calzado con dashboards por rol.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Seed en memoria: cada sesión trabaja sobre su propia copia.
	store := fixtures.New()
	sessionStore := memory.NewSessionStore()
	notifier := notify.NewService(memory.NewNotificationStore(), cfg.Notify.Dismiss())
	m := metrics.New()

	productViews := memory.NewViewStore[[]entity.Product]()
	shipmentViews := memory.NewViewStore[[]entity.Shipment]()
	deliveryViews := memory.NewViewStore[[]entity.Delivery]()
	adminViews := memory.NewViewStore[usecase.AdminView]()

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	insights := infraai.NewStaticInsights(store)

	authUC := auth.NewAuthUseCase(store, sessionStore, notifier, m, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		TTL:        cfg.Session.TTL(),
		Issuer:     cfg.Session.Issuer,
		LoginDelay: cfg.Session.LoginDelay(),
	}, log, productViews, shipmentViews, deliveryViews, adminViews)

	sellerUC := usecase.NewSellerUseCase(store.Products(), store.Orders(), store, productViews, notifier, m)
	logisticsUC := usecase.NewLogisticsUseCase(store.Shipments(), shipmentViews, notifier, m)
	deliveryUC := usecase.NewDeliveryUseCase(store.Deliveries(), deliveryViews, notifier, pdfGenerator, m)
	adminUC := usecase.NewAdminUseCase(store, store.SystemLogs(), adminViews, notifier, m)
	dashboardUC := appanalytics.NewDashboardUseCase(store, insights, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 20,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.Docs.SwaggerFile,
		Path:     "docs",
		Title:    "DolphNet API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "sessions": sessionStore.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SellerUC:    sellerUC,
		LogisticsUC: logisticsUC,
		DeliveryUC:  deliveryUC,
		AdminUC:     adminUC,
		DashboardUC: dashboardUC,
		Notifier:    notifier,
		Metrics:     m,
		Log:         log,
	})

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go authUC.RunSweeper(sweepCtx, cfg.Session.SweepInterval())

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
