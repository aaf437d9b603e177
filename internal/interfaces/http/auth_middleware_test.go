package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	apphttp "github.com/jhoicas/dolphnet-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/dolphnet-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSession
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin Authorization → 401 SESSION_REQUIRED con redirect a /login.
func TestRequireSession_SinHeader(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/session", "", nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "SESSION_REQUIRED", body.Code)
	assert.Equal(t, "/login", body.RedirectTo)
}

// Caso 2: formato distinto de "Bearer <token>" → 401.
func TestRequireSession_FormatoInvalido(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "john@dolphnet.com", "seller")

	resp := env.doRaw(t, http.MethodGet, "/session", "Token "+token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Caso 3: token firmado con otro secreto → 401.
func TestRequireSession_TokenDeOtroSecreto(t *testing.T) {
	env := newTestEnv(t)
	tok, err := pkgjwt.Generate("otro-secreto", "sid", "1", "seller", "x", time.Hour)
	require.NoError(t, err)

	resp := env.do(t, http.MethodGet, "/session", tok, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: token válido cuya sesión ya se cerró → 401.
func TestRequireSession_SesionCerrada(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "john@dolphnet.com", "seller")

	resp := env.do(t, http.MethodPost, "/logout", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/session", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: sesión viva → pasa y GetSession la expone al handler.
func TestRequireSession_CargaSesionEnLocals(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "dave@dolphnet.com", "delivery")

	app := fiber.New()
	app.Get("/probe", apphttp.RequireSession(env.deps.AuthUC), func(c *fiber.Ctx) error {
		s, ok := apphttp.GetSession(c)
		return c.JSON(fiber.Map{"ok": ok, "name": s.Identity.Name, "role": apphttp.GetRole(c)})
	})

	req := newRequest(t, http.MethodGet, "/probe", "Bearer "+token, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decode(t, resp, &body)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Dave Delivery", body["name"])
	assert.Equal(t, string(entity.RoleDelivery), body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireDashboard
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: vendedor en el panel de admin → 403 con aviso "Access Denied".
func TestRequireDashboard_VendedorEnAdminPanel(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "john@dolphnet.com", "seller")

	resp := env.do(t, http.MethodGet, "/admin-panel", token, nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "FORBIDDEN", body.Code)
	assert.Equal(t, "/login", body.RedirectTo)
	require.NotNil(t, body.Notification)
	assert.Equal(t, "Access Denied", body.Notification.Title)
	assert.Equal(t, "You don't have permission to access the admin panel", body.Notification.Description)
	assert.Equal(t, "destructive", body.Notification.Variant)
}

// Caso 7: la guarda aplica igual a los cinco dashboards.
func TestRequireDashboard_CadaRolSoloSuDashboard(t *testing.T) {
	env := newTestEnv(t)
	cases := []struct {
		email, role, own, other string
	}{
		{"john@dolphnet.com", "seller", "/seller-dashboard", "/logistics-dashboard"},
		{"lisa@dolphnet.com", "logistics", "/logistics-dashboard", "/delivery-dashboard"},
		{"dave@dolphnet.com", "delivery", "/delivery-dashboard", "/business-dashboard"},
		{"barbara@dolphnet.com", "business", "/business-dashboard", "/admin-panel"},
		{"admin@dolphnet.com", "admin", "/admin-panel", "/seller-dashboard"},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			token := env.login(t, tc.email, tc.role)
			assert.Equal(t, fiber.StatusOK, env.do(t, http.MethodGet, tc.own, token, nil).StatusCode)
			assert.Equal(t, fiber.StatusForbidden, env.do(t, http.MethodGet, tc.other, token, nil).StatusCode)
		})
	}
}

// Caso 8: un rol desconocido solo puede abrir el dashboard de vendedor.
func TestRequireDashboard_RolDesconocido(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "guest@example.com", "guest")

	assert.Equal(t, fiber.StatusOK, env.do(t, http.MethodGet, "/seller-dashboard", token, nil).StatusCode)
	assert.Equal(t, fiber.StatusForbidden, env.do(t, http.MethodGet, "/admin-panel", token, nil).StatusCode)
}
