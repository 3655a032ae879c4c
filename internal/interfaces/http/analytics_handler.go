package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/application/usecase"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
)

// AnalyticsHandler expone la serie de ingresos y el resumen del dashboard
// (protegido).
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// RevenueSeries godoc
// @Summary      Serie de ingresos de un producto
// @Description  Sin product_id la serie viene vacía: el frontend pinta el
//               estado "selecciona un producto", no un error.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "ID del producto"
// @Param        granularity  query  string  false  "daily | weekly | monthly | yearly"  default(daily)
// @Success      200  {object}  dto.RevenueSeriesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/revenue [get]
func (h *AnalyticsHandler) RevenueSeries(c *fiber.Ctx) error {
	out, err := h.uc.RevenueSeries(c.Query("product_id"), c.Query("granularity", "daily"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_GRANULARITY", Message: "granularidades soportadas: daily, weekly, monthly, yearly"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DashboardSummary godoc
// @Summary      KPIs del dashboard
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *AnalyticsHandler) DashboardSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.DashboardSummary())
}
