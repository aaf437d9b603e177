package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dolphnet-api/internal/application/usecase"
)

// AdminHandler maneja el panel de administración (protegido, solo admin).
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Panel de administración
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminPanelResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin-panel [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	return c.JSON(h.uc.Dashboard(s))
}

// GetUser godoc
// @Summary      Obtener usuario por ID
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.AdminUserRow
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin-panel/users/{id} [get]
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	out, err := h.uc.GetUser(s, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ToggleActive godoc
// @Summary      Activar / desactivar usuario
// @Description  Invierte is_active y antepone una entrada al log del sistema.
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.ActionResponse[dto.AdminPanelResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin-panel/users/{id}/toggle-active [post]
func (h *AdminHandler) ToggleActive(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	out, err := h.uc.ToggleActive(s, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
