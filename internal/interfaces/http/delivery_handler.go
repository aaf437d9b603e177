package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/application/usecase"
)

// DeliveryHandler maneja el dashboard del repartidor (protegido).
type DeliveryHandler struct {
	uc *usecase.DeliveryUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard del repartidor
// @Tags         delivery
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DeliveryDashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /delivery-dashboard [get]
func (h *DeliveryHandler) Dashboard(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	return c.JSON(h.uc.Dashboard(s))
}

// MarkDelivered godoc
// @Summary      Marcar entrega completada
// @Tags         delivery
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrega"
// @Success      200  {object}  dto.ActionResponse[dto.DeliveryDashboardResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /delivery-dashboard/deliveries/{id}/delivered [post]
func (h *DeliveryHandler) MarkDelivered(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	out, err := h.uc.MarkDelivered(s, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MarkFailed godoc
// @Summary      Marcar entrega fallida
// @Tags         delivery
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrega"
// @Success      200  {object}  dto.ActionResponse[dto.DeliveryDashboardResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /delivery-dashboard/deliveries/{id}/failed [post]
func (h *DeliveryHandler) MarkFailed(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	out, err := h.uc.MarkFailed(s, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Scan godoc
// @Summary      Escanear QR del paquete
// @Description  El código es el ID de la entrega; se marca como completada.
// @Tags         delivery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "Código leído"
// @Success      200   {object}  dto.ActionResponse[dto.DeliveryDashboardResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /delivery-dashboard/scan [post]
func (h *DeliveryHandler) Scan(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Scan(s, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Label godoc
// @Summary      Etiqueta PDF del paquete
// @Tags         delivery
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la entrega"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /delivery-dashboard/deliveries/{id}/label [get]
func (h *DeliveryHandler) Label(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	id := c.Params("id")
	pdfBytes, err := h.uc.Label(c.Context(), s, id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="label-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
