package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/application/usecase"
)

// ProductHandler maneja el dashboard del vendedor (protegido).
type ProductHandler struct {
	uc *usecase.SellerUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.SellerUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard del vendedor
// @Tags         seller
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SellerDashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /seller-dashboard [get]
func (h *ProductHandler) Dashboard(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	out, err := h.uc.Dashboard(c.Context(), s)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar producto
// @Description  price y stock aceptan texto o número. El stock fraccionario se trunca.
// @Tags         seller
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ActionResponse[dto.SellerDashboardResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /seller-dashboard/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddProduct(c.Context(), s, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         seller
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ActionResponse[dto.SellerDashboardResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /seller-dashboard/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	out, err := h.uc.DeleteProduct(c.Context(), s, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
