package http

import (
	"context"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/application/usecase"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
)

// AIHandler expone los insights, el chat y la extracción de facturas
// (protegido).
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler de IA.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Insights godoc
// @Summary      Insights del inventario
// @Description  source indica si respondió el LLM ("llm") o el plan B
//               determinista ("rules").
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Param        lang  query  string  false  "en | bn"  default(en)
// @Success      200   {object}  dto.InsightListResponse
// @Router       /api/ai/insights [get]
func (h *AIHandler) Insights(c *fiber.Ctx) error {
	out, err := h.uc.Insights(c.Context(), c.Query("lang", "en"))
	if err != nil {
		return aiError(c, err)
	}
	return c.JSON(out)
}

// Chat godoc
// @Summary      Chat sobre el inventario
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "Mensaje del dueño"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/chat [post]
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Chat(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message es requerido"})
		}
		return aiError(c, err)
	}
	return c.JSON(out)
}

// ExtractInvoice godoc
// @Summary      Extraer renglones de una foto de factura
// @Description  Devuelve la extracción sin tocar el inventario. Para aplicarla
//               usar POST /api/products/import-invoice.
// @Tags         ai
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Foto de la factura"
// @Success      200    {object}  dto.InvoiceExtractionDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      503    {object}  dto.ErrorResponse
// @Router       /api/ai/extract-invoice [post]
func (h *AIHandler) ExtractInvoice(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se espera la imagen en el campo 'image'"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer la imagen"})
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer la imagen"})
	}

	out, err := h.uc.ExtractInvoice(c.Context(), image, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la imagen está vacía"})
		}
		return aiError(c, err)
	}
	return c.JSON(out)
}

// aiError mapea los fallos comunes de las operaciones de IA.
func aiError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrLLMUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: "el proveedor de IA no está configurado"})
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{Code: "TIMEOUT", Message: "el proveedor de IA no respondió a tiempo"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
