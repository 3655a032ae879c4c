package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/application/usecase"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
)

// PricingHandler expone el motor de recomendaciones de precio (protegido).
type PricingHandler struct {
	uc *usecase.PricingUseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *usecase.PricingUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// Quote godoc
// @Summary      Evaluar un precio candidato
// @Description  Devuelve el veredicto del motor sin modificar el producto.
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.PriceQuoteRequest  true  "Precio candidato"
// @Success      200   {object}  dto.PriceRecommendationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/price/quote [post]
func (h *PricingHandler) Quote(c *fiber.Ctx) error {
	var in dto.PriceQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Quote(c.Params("id"), in.CandidatePrice)
	if err != nil {
		return pricingError(c, err)
	}
	return c.JSON(out)
}

// Apply godoc
// @Summary      Aplicar la recomendación del motor
// @Description  Reevalúa el candidato y persiste el precio sugerido. Si el
//               veredicto no trae sugerencia responde 409.
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.PriceQuoteRequest  true  "Precio candidato"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/price/apply [post]
func (h *PricingHandler) Apply(c *fiber.Ctx) error {
	var in dto.PriceQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ApplyRecommendation(c.Params("id"), in.CandidatePrice)
	if err != nil {
		if errors.Is(err, domain.ErrNoRecommendation) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_RECOMMENDATION", Message: "el motor no sugiere un precio para este candidato"})
		}
		return pricingError(c, err)
	}
	return c.JSON(out)
}

// Manual godoc
// @Summary      Fijar precio manualmente
// @Description  Guarda el precio literal, sin pasar por el motor.
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ManualPriceRequest  true  "Precio nuevo"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/price [put]
func (h *PricingHandler) Manual(c *fiber.Ctx) error {
	var in dto.ManualPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ManualSave(c.Params("id"), in.Price)
	if err != nil {
		return pricingError(c, err)
	}
	return c.JSON(out)
}

func pricingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el precio no puede ser negativo"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
