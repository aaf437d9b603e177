package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/dolphnet-api/internal/application/analytics"
)

// DashboardHandler maneja el dashboard del dueño del negocio.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve KPIs, gráficos, productos top e insights.
// GET /business-dashboard
//
// @Summary      Dashboard de negocio
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessDashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /business-dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	s, _ := GetSession(c)
	summary, err := h.uc.GetSummary(c.Context(), s)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// Report devuelve el reporte PDF del dashboard.
// GET /business-dashboard/report
//
// @Summary      Reporte PDF de negocio
// @Tags         business
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /business-dashboard/report [get]
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Report(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="business-overview.pdf"`)
	return c.Send(pdfBytes)
}
