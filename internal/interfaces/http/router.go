package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appanalytics "github.com/jhoicas/dolphnet-api/internal/application/analytics"
	"github.com/jhoicas/dolphnet-api/internal/application/auth"
	"github.com/jhoicas/dolphnet-api/internal/application/notify"
	"github.com/jhoicas/dolphnet-api/internal/application/usecase"
	"github.com/jhoicas/dolphnet-api/internal/domain/navigation"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/metrics"
	"github.com/jhoicas/dolphnet-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SellerUC    *usecase.SellerUseCase
	LogisticsUC *usecase.LogisticsUseCase
	DeliveryUC  *usecase.DeliveryUseCase
	AdminUC     *usecase.AdminUseCase
	DashboardUC *appanalytics.DashboardUseCase
	Notifier    *notify.Service
	Metrics     *metrics.Metrics // nil = sin instrumentación ni /metrics
	Log         *logger.Logger   // nil = descarta
}

// Router registra las rutas de la API. El catch-all 404 va al final.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.Named("http")

	if deps.Metrics != nil {
		app.Use(Instrument(deps.Metrics, log))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	// Páginas públicas
	app.Get("/", Landing)
	app.Get(navigation.PathLogin, LoginPage)
	app.Get("/navigation", Navigation)

	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post(navigation.PathLogin, authHandler.Login)

	// Rutas con sesión (requieren Bearer Token de la pestaña)
	session := RequireSession(deps.AuthUC)
	app.Get("/session", session, authHandler.Session)
	app.Post("/logout", session, authHandler.Logout)
	app.Post("/reload", session, authHandler.Reload)
	app.Get("/notifications", session, authHandler.Notifications)

	// Dashboards: sesión + guarda de rol, igual para los cinco
	dashboard := func(path string) fiber.Router {
		return app.Group(path,
			underPath(path, session),
			underPath(path, RequireDashboard(path, deps.Notifier)))
	}

	seller := dashboard(navigation.PathSellerDashboard)
	productHandler := NewProductHandler(deps.SellerUC)
	seller.Get("/", productHandler.Dashboard)
	seller.Post("/products", productHandler.Create)
	seller.Delete("/products/:id", productHandler.Delete)

	logistics := dashboard(navigation.PathLogisticsDashboard)
	logisticsHandler := NewLogisticsHandler(deps.LogisticsUC)
	logistics.Get("/", logisticsHandler.Dashboard)
	logistics.Get("/shipments/:id", logisticsHandler.GetByID)
	logistics.Post("/shipments/:id/start-transit", logisticsHandler.StartTransit)
	logistics.Post("/shipments/:id/mark-delivered", logisticsHandler.MarkDelivered)

	delivery := dashboard(navigation.PathDeliveryDashboard)
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	delivery.Get("/", deliveryHandler.Dashboard)
	delivery.Post("/deliveries/:id/delivered", deliveryHandler.MarkDelivered)
	delivery.Post("/deliveries/:id/failed", deliveryHandler.MarkFailed)
	delivery.Post("/scan", deliveryHandler.Scan)
	delivery.Get("/deliveries/:id/label", deliveryHandler.Label)

	business := dashboard(navigation.PathBusinessDashboard)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	business.Get("/", dashboardHandler.GetSummary)
	business.Get("/report", dashboardHandler.Report)

	admin := dashboard(navigation.PathAdminPanel)
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/", adminHandler.Dashboard)
	admin.Get("/users/:id", adminHandler.GetUser)
	admin.Post("/users/:id/toggle-active", adminHandler.ToggleActive)

	app.Use(func(c *fiber.Ctx) error {
		log.Warn().Str("method", c.Method()).Str("path", c.Path()).Msg("ruta no encontrada")
		return NotFound(c)
	})
}

// underPath aplica h solo a path y sus subrutas. Fiber asocia el middleware de un grupo por
// prefijo de texto, así que "/seller-dashboardXYZ" también entraría al grupo "/seller-dashboard".
func underPath(path string, h fiber.Handler) fiber.Handler {
	prefix := strings.ToLower(path)
	return func(c *fiber.Ctx) error {
		p := strings.ToLower(c.Path())
		if p != prefix && !strings.HasPrefix(p, prefix+"/") {
			return c.Next()
		}
		return h(c)
	}
}
