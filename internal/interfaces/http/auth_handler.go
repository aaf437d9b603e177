package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dolphnet-api/internal/application/auth"
	"github.com/jhoicas/dolphnet-api/internal/application/dto"
)

// AuthHandler maneja login, logout, recarga y la sesión actual.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Siempre tiene éxito: el password no se verifica. Un token vivo en Authorization se reemplaza.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password, role, tab_id"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	var previous string
	if token := bearerToken(c); token != "" {
		if s, err := h.uc.Authenticate(token); err == nil {
			previous = s.ID
		}
	}
	out, err := h.uc.Login(c.Context(), in, previous)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Session godoc
// @Summary      Sesión actual
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	out, err := h.uc.Current(s.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.LogoutResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	return c.JSON(h.uc.Logout(s.ID))
}

// Reload godoc
// @Summary      Recargar
// @Description  Descarta las copias locales de los dashboards de la sesión; la sesión se conserva.
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.ReloadResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /reload [post]
func (h *AuthHandler) Reload(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	out, err := h.uc.Reload(s.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Notifications godoc
// @Summary      Avisos vivos de la sesión
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.NotificationListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /notifications [get]
func (h *AuthHandler) Notifications(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	return c.JSON(h.uc.Notifications(s.ID))
}
