package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/application/usecase"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
)

// NotificationHandler expone la campana, la vista de alertas y la exportación
// del reporte (protegido).
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar notificaciones
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationListResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// MarkAllRead godoc
// @Summary      Marcar todas las notificaciones como leídas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationListResponse
// @Router       /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	return c.JSON(h.uc.MarkAllRead())
}

// AlertFeeds godoc
// @Summary      Listas de la vista de alertas
// @Description  Reposición (stock bajo, ascendente) y oportunidades de demanda
//               alta. No las acota el tope de la campana.
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertFeedsResponse
// @Router       /api/alerts [get]
func (h *NotificationHandler) AlertFeeds(c *fiber.Ctx) error {
	return c.JSON(h.uc.AlertFeeds())
}

// Export godoc
// @Summary      Exportar el reporte de alertas
// @Tags         notifications
// @Security     Bearer
// @Param        format  query  string  false  "json | text | pdf"  default(json)
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/alerts/export [get]
func (h *NotificationHandler) Export(c *fiber.Ctx) error {
	format := c.Query("format", "json")

	data, contentType, err := h.uc.Export(c.Context(), format)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "formatos soportados: json, text, pdf"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	filename := fmt.Sprintf("tracksmart-alerts-%s.%s", time.Now().Format("20060102"), exportExtension(format))
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func exportExtension(format string) string {
	if format == "text" {
		return "txt"
	}
	return format
}
