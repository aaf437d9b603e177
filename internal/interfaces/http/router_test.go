package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/dolphnet-api/internal/application/analytics"
	"github.com/jhoicas/dolphnet-api/internal/application/auth"
	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/application/notify"
	"github.com/jhoicas/dolphnet-api/internal/application/usecase"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/ai"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/memory"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/metrics"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/dolphnet-api/internal/interfaces/http"
)

// ─── Harness ──────────────────────────────────────────────────────────────────

type testEnv struct {
	app  *fiber.App
	deps apphttp.RouterDeps
}

// newTestEnv arma la API completa sobre el seed en memoria, sin demora de login.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := fixtures.New()
	notifier := notify.NewService(memory.NewNotificationStore(), time.Minute)
	m := metrics.New()
	documents := pdf.NewMarotoPDFGenerator()

	products := memory.NewViewStore[[]entity.Product]()
	shipments := memory.NewViewStore[[]entity.Shipment]()
	deliveries := memory.NewViewStore[[]entity.Delivery]()
	admin := memory.NewViewStore[usecase.AdminView]()

	authUC := auth.NewAuthUseCase(
		store,
		memory.NewSessionStore(),
		notifier,
		m,
		auth.SessionConfig{Secret: "router-test", TTL: time.Hour, Issuer: "dolphnet-test"},
		nil,
		products, shipments, deliveries, admin,
	)

	deps := apphttp.RouterDeps{
		AuthUC:      authUC,
		SellerUC:    usecase.NewSellerUseCase(store.Products(), store.Orders(), store, products, notifier, m),
		LogisticsUC: usecase.NewLogisticsUseCase(store.Shipments(), shipments, notifier, m),
		DeliveryUC:  usecase.NewDeliveryUseCase(store.Deliveries(), deliveries, notifier, documents, m),
		AdminUC:     usecase.NewAdminUseCase(store, store.SystemLogs(), admin, notifier, m),
		DashboardUC: appanalytics.NewDashboardUseCase(store, ai.NewStaticInsights(store), documents),
		Notifier:    notifier,
		Metrics:     m,
	}

	app := fiber.New()
	apphttp.Router(app, deps)
	return &testEnv{app: app, deps: deps}
}

func newRequest(t *testing.T, method, path, authorization string, body interface{}) *http.Request {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	return req
}

// doRaw envía el header Authorization tal cual.
func (e *testEnv) doRaw(t *testing.T, method, path, authorization string, body interface{}) *http.Response {
	t.Helper()
	resp, err := e.app.Test(newRequest(t, method, path, authorization, body), -1)
	require.NoError(t, err)
	return resp
}

// do envía el token como "Bearer <token>"; token vacío = sin header.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	authorization := ""
	if token != "" {
		authorization = "Bearer " + token
	}
	return e.doRaw(t, method, path, authorization, body)
}

func (e *testEnv) login(t *testing.T, email, role string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/login", "", dto.LoginRequest{Email: email, Password: "secret", Role: role})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ─── Páginas públicas ────────────────────────────────────────────────────────

func TestPaginasPublicas(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var landing dto.LandingResponse
	decode(t, resp, &landing)
	assert.Equal(t, "/login", landing.CTAPath)

	resp = env.do(t, http.MethodGet, "/login", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var page dto.LoginPageResponse
	decode(t, resp, &page)
	assert.Len(t, page.Roles, 5)

	resp = env.do(t, http.MethodGet, "/navigation?role=admin", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var nav dto.NavigationResponse
	decode(t, resp, &nav)
	assert.Equal(t, "/admin-panel", nav.DashboardPath)
}

func TestRutaDesconocida_404ConPath(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/no-existe", "", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "/no-existe", body.Path)
}

func TestRutaDesconocida_PrefijoDeDashboardNoPideSesion(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/seller-dashboardXYZ", "/admin-panel-old", "/logistics-dashboard.json"} {
		resp := env.do(t, http.MethodGet, path, "", nil)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)

		var body dto.ErrorResponse
		decode(t, resp, &body)
		assert.Equal(t, "NOT_FOUND", body.Code)
		assert.Equal(t, path, body.Path)
	}

	resp := env.do(t, http.MethodGet, "/seller-dashboard", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp = env.do(t, http.MethodGet, "/Seller-Dashboard/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// ─── Sesión ──────────────────────────────────────────────────────────────────

func TestLogin_AdminRedirigeAlPanel(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/login", "", dto.LoginRequest{Email: "admin@dolphnet.com", Password: "x", Role: "admin"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	decode(t, resp, &out)
	assert.Equal(t, "/admin-panel", out.RedirectTo)
	assert.Equal(t, "Admin User", out.User.Name)
	require.NotNil(t, out.Notification)
	assert.Equal(t, "Login successful!", out.Notification.Title)
}

func TestLogin_CuerpoInvalido(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSesion_CicloCompleto(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "lisa@dolphnet.com", "logistics")

	resp := env.do(t, http.MethodGet, "/session", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var sess dto.SessionResponse
	decode(t, resp, &sess)
	assert.Equal(t, "Lisa Logistics", sess.User.Name)
	assert.Equal(t, "/logistics-dashboard", sess.RedirectTo)

	resp = env.do(t, http.MethodGet, "/notifications", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var notes dto.NotificationListResponse
	decode(t, resp, &notes)
	require.Len(t, notes.Items, 1)
	assert.Equal(t, "Welcome, Lisa Logistics!", notes.Items[0].Description)

	resp = env.do(t, http.MethodPost, "/logout", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.LogoutResponse
	decode(t, resp, &out)
	assert.Equal(t, "/login", out.RedirectTo)
	require.NotNil(t, out.Notification)
	assert.Equal(t, "Logged Out", out.Notification.Title)

	assert.Equal(t, fiber.StatusUnauthorized, env.do(t, http.MethodGet, "/session", token, nil).StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, env.do(t, http.MethodGet, "/logistics-dashboard", token, nil).StatusCode)
}

func TestReload_DescartaCambiosYConservaSesion(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "lisa@dolphnet.com", "logistics")

	resp := env.do(t, http.MethodPost, "/logistics-dashboard/shipments/S1002/start-transit", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/reload", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/logistics-dashboard/shipments/S1002", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var sh dto.ShipmentResponse
	decode(t, resp, &sh)
	assert.Equal(t, string(entity.ShipmentPending), sh.Status)
}

// ─── Vendedor ────────────────────────────────────────────────────────────────

func TestSeller_AgregarYEliminarProducto(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "john@dolphnet.com", "seller")

	resp := env.do(t, http.MethodPost, "/seller-dashboard/products", token, map[string]interface{}{
		"name":     "Trail Blazer",
		"category": "Hiking",
		"price":    "89.5",
		"stock":    12.7,
		"sizes":    []string{" 9 ", "", "10"},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.ActionResponse[dto.SellerDashboardResponse]
	decode(t, resp, &out)
	require.NotNil(t, out.Notification)
	assert.Equal(t, "Product Added", out.Notification.Title)
	require.Len(t, out.Page.Products, 9)
	added := out.Page.Products[8]
	assert.Equal(t, "p9", added.ID)
	assert.Equal(t, 12, added.Stock)
	assert.Equal(t, []string{"9", "10"}, added.Sizes)
	assert.Equal(t, "1", added.SellerID)

	resp = env.do(t, http.MethodDelete, "/seller-dashboard/products/p1", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &out)
	assert.Len(t, out.Page.Products, 8)
	assert.Equal(t, "Product Deleted", out.Notification.Title)
}

func TestSeller_ValidacionDelFormulario(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "john@dolphnet.com", "seller")

	resp := env.do(t, http.MethodPost, "/seller-dashboard/products", token, map[string]interface{}{
		"name":  "Sin categoría",
		"price": "abc",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "VALIDATION", body.Code)
	fields := make([]string, 0, len(body.Fields))
	for _, f := range body.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"category", "price", "stock"}, fields)
	require.NotNil(t, body.Notification)
	assert.Equal(t, "Validation Error", body.Notification.Title)
	assert.Equal(t, "Please fill in all required fields.", body.Notification.Description)
}

func TestSeller_EliminarInexistente404(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "john@dolphnet.com", "seller")

	resp := env.do(t, http.MethodDelete, "/seller-dashboard/products/p404", token, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

// ─── Logística ───────────────────────────────────────────────────────────────

func TestLogistics_Transiciones(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "lisa@dolphnet.com", "logistics")

	resp := env.do(t, http.MethodPost, "/logistics-dashboard/shipments/S1003/mark-delivered", token, nil)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "INVALID_TRANSITION", body.Code)

	resp = env.do(t, http.MethodPost, "/logistics-dashboard/shipments/S1002/start-transit", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.ActionResponse[dto.LogisticsDashboardResponse]
	decode(t, resp, &out)
	require.NotNil(t, out.Notification)
	assert.Equal(t, "Status Updated", out.Notification.Title)
	assert.Equal(t, "Shipment #S1002 status changed to in_transit", out.Notification.Description)
	assert.Equal(t, "3", out.Page.Stats[1].Value)

	assert.Equal(t, fiber.StatusNotFound,
		env.do(t, http.MethodGet, "/logistics-dashboard/shipments/S9999", token, nil).StatusCode)
}

// ─── Repartidor ──────────────────────────────────────────────────────────────

func TestDelivery_ScanYEtiqueta(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "dave@dolphnet.com", "delivery")

	resp := env.do(t, http.MethodPost, "/delivery-dashboard/scan", token, dto.ScanRequest{Code: "D1001"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.ActionResponse[dto.DeliveryDashboardResponse]
	decode(t, resp, &out)
	assert.Equal(t, "Delivery Completed", out.Notification.Title)
	assert.Len(t, out.Page.Today, 2)

	resp = env.do(t, http.MethodPost, "/delivery-dashboard/scan", token, dto.ScanRequest{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/delivery-dashboard/deliveries/D1001/failed", token, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/delivery-dashboard/deliveries/D1002/label", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

// ─── Negocio ─────────────────────────────────────────────────────────────────

func TestBusiness_ResumenYReporte(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "barbara@dolphnet.com", "business")

	resp := env.do(t, http.MethodGet, "/business-dashboard", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.BusinessDashboardResponse
	decode(t, resp, &out)
	assert.Len(t, out.Stats, 4)
	assert.Len(t, out.TopProducts, 5)
	assert.Len(t, out.Insights, 3)

	resp = env.do(t, http.MethodGet, "/business-dashboard/report", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "business-overview.pdf")
}

// ─── Admin ───────────────────────────────────────────────────────────────────

func TestAdmin_ToggleActive(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "admin@dolphnet.com", "admin")

	resp := env.do(t, http.MethodPost, "/admin-panel/users/2/toggle-active", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.ActionResponse[dto.AdminPanelResponse]
	decode(t, resp, &out)
	require.NotNil(t, out.Notification)
	assert.Equal(t, "User deactivated", out.Notification.Title)
	assert.Equal(t, "User Lisa Logistics has been deactivated.", out.Notification.Description)

	require.Len(t, out.Page.Logs, 9)
	first := out.Page.Logs[0]
	assert.Equal(t, string(entity.LogUser), first.Type)
	assert.Equal(t, string(entity.LevelInfo), first.Level)
	assert.Contains(t, first.Action, "Lisa Logistics")
	assert.Contains(t, first.Action, "deactivated")

	resp = env.do(t, http.MethodGet, "/admin-panel/users/2", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var row dto.AdminUserRow
	decode(t, resp, &row)
	assert.False(t, row.IsActive)
	assert.Equal(t, "Inactive", row.Status)

	// Otra pestaña del mismo admin no ve el cambio.
	other := env.login(t, "admin@dolphnet.com", "admin")
	resp = env.do(t, http.MethodGet, "/admin-panel/users/2", other, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &row)
	assert.True(t, row.IsActive)
}

// ─── Métricas ────────────────────────────────────────────────────────────────

func TestMetrics_Expuestas(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "john@dolphnet.com", "seller")

	resp := env.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "http_requests_total")
	assert.Contains(t, string(raw), `dolphnet_logins_total{role="seller"} 1`)
}
