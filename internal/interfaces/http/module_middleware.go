package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/application/notify"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/navigation"
)

// dashboardNames nombre de cada dashboard en el aviso "Access Denied".
var dashboardNames = map[string]string{
	navigation.PathSellerDashboard:    "the seller dashboard",
	navigation.PathLogisticsDashboard: "the logistics dashboard",
	navigation.PathDeliveryDashboard:  "the delivery dashboard",
	navigation.PathBusinessDashboard:  "the business dashboard",
	navigation.PathAdminPanel:         "the admin panel",
}

// RequireDashboard devuelve un middleware Fiber que verifica que el rol de la sesión
// pueda abrir el dashboard. Debe usarse DESPUÉS de RequireSession.
//
// Comportamiento:
//   - 401 SESSION_REQUIRED → no hay sesión en el contexto.
//   - 403 FORBIDDEN → el router de roles no lleva a ese dashboard; se encola "Access Denied"
//     y se indica volver a "/login".
func RequireDashboard(path string, notifier *notify.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := GetSession(c)
		if !ok {
			return sessionRequired(c, "sesión no encontrada en el contexto")
		}
		if navigation.CanOpen(session.Identity.Role, path) {
			return c.Next()
		}

		n := notifier.Push(session.ID, "Access Denied",
			"You don't have permission to access "+dashboardNames[path], entity.VariantDestructive)
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:         "FORBIDDEN",
			Message:      "el rol '" + string(session.Identity.Role) + "' no tiene acceso a " + path,
			RedirectTo:   navigation.PathLogin,
			Notification: notify.ToDTO(n),
		})
	}
}
