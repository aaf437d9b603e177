package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dolphnet-api/internal/application/usecase"
)

// LogisticsHandler maneja el dashboard logístico (protegido).
type LogisticsHandler struct {
	uc *usecase.LogisticsUseCase
}

// NewLogisticsHandler construye el handler.
func NewLogisticsHandler(uc *usecase.LogisticsUseCase) *LogisticsHandler {
	return &LogisticsHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard logístico
// @Tags         logistics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LogisticsDashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /logistics-dashboard [get]
func (h *LogisticsHandler) Dashboard(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	return c.JSON(h.uc.Dashboard(s))
}

// GetByID godoc
// @Summary      Obtener envío por ID
// @Tags         logistics
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del envío"
// @Success      200  {object}  dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /logistics-dashboard/shipments/{id} [get]
func (h *LogisticsHandler) GetByID(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	out, err := h.uc.GetShipment(s, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StartTransit godoc
// @Summary      Iniciar tránsito (pending → in_transit)
// @Tags         logistics
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del envío"
// @Success      200  {object}  dto.ActionResponse[dto.LogisticsDashboardResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /logistics-dashboard/shipments/{id}/start-transit [post]
func (h *LogisticsHandler) StartTransit(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	out, err := h.uc.StartTransit(s, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MarkDelivered godoc
// @Summary      Marcar entregado (in_transit → delivered)
// @Tags         logistics
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del envío"
// @Success      200  {object}  dto.ActionResponse[dto.LogisticsDashboardResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /logistics-dashboard/shipments/{id}/mark-delivered [post]
func (h *LogisticsHandler) MarkDelivered(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	out, err := h.uc.MarkDelivered(s, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
