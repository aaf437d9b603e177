package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dolphnet-api/internal/application/shell"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
)

// Landing godoc
// @Summary      Página de inicio
// @Tags         pages
// @Produce      json
// @Success      200  {object}  dto.LandingResponse
// @Router       / [get]
func Landing(c *fiber.Ctx) error {
	return c.JSON(shell.Landing())
}

// LoginPage godoc
// @Summary      Formulario de login
// @Tags         pages
// @Produce      json
// @Success      200  {object}  dto.LoginPageResponse
// @Router       /login [get]
func LoginPage(c *fiber.Ctx) error {
	return c.JSON(shell.LoginPage())
}

// Navigation godoc
// @Summary      Destino y menú de un rol
// @Description  Roles desconocidos van al dashboard de vendedor con el menú mínimo.
// @Tags         pages
// @Produce      json
// @Param        role  query  string  false  "seller | logistics | delivery | business | admin"
// @Success      200   {object}  dto.NavigationResponse
// @Router       /navigation [get]
func Navigation(c *fiber.Ctx) error {
	return c.JSON(shell.Navigation(entity.Role(c.Query("role"))))
}
