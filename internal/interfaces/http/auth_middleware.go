package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/navigation"
)

// Locals key para la sesión en Fiber.
const LocalSession = "session"

// sessionAuthenticator es el contrato mínimo que necesita el middleware para validar el token.
// Lo implementa *auth.AuthUseCase.
type sessionAuthenticator interface {
	Authenticate(token string) (entity.Session, error)
}

// RequireSession valida el Bearer Token de la pestaña y carga la sesión viva en c.Locals.
// Sin sesión responde 401 SESSION_REQUIRED con redirect_to "/login".
func RequireSession(authn sessionAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return sessionRequired(c, "Authorization header requerido")
		}
		session, err := authn.Authenticate(token)
		if err != nil {
			return sessionRequired(c, "sesión inexistente o expirada")
		}
		c.Locals(LocalSession, session)
		return c.Next()
	}
}

func sessionRequired(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:       "SESSION_REQUIRED",
		Message:    msg,
		RedirectTo: navigation.PathLogin,
	})
}

// bearerToken extrae el token de "Authorization: Bearer <token>". Vacío si no hay o el formato es otro.
func bearerToken(c *fiber.Ctx) string {
	parts := strings.SplitN(c.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetSession devuelve la sesión del contexto (después de RequireSession).
func GetSession(c *fiber.Ctx) (entity.Session, bool) {
	v := c.Locals(LocalSession)
	if v == nil {
		return entity.Session{}, false
	}
	s, ok := v.(entity.Session)
	return s, ok
}

// GetRole devuelve el rol de la sesión del contexto.
func GetRole(c *fiber.Ctx) entity.Role {
	s, _ := GetSession(c)
	return s.Identity.Role
}
