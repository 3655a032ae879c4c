package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
	"github.com/tu-usuario/tracksmart-api/internal/domain/repository"
	"github.com/tu-usuario/tracksmart-api/internal/domain/signal"
)

// PricingUseCase orquesta el motor de recomendaciones de precio sobre el
// catálogo. El motor en sí es puro; este caso de uso le acerca el producto y
// persiste el resultado cuando el dueño acepta.
type PricingUseCase struct {
	store repository.EntityStore
}

// NewPricingUseCase construye el caso de uso.
func NewPricingUseCase(store repository.EntityStore) *PricingUseCase {
	return &PricingUseCase{store: store}
}

// Quote evalúa un precio candidato para el producto y devuelve el veredicto
// del motor sin tocar el estado.
func (uc *PricingUseCase) Quote(productID string, candidate decimal.Decimal) (*dto.PriceRecommendationResponse, error) {
	product, err := uc.store.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	rec := signal.Recommend(product, candidate)
	return toRecommendationResponse(productID, rec), nil
}

// ApplyRecommendation vuelve a evaluar el candidato y, si el veredicto trae un
// precio sugerido, lo persiste. Un veredicto sin sugerencia (maintain o
// advertencia) es domain.ErrNoRecommendation: no hay nada que aplicar.
func (uc *PricingUseCase) ApplyRecommendation(productID string, candidate decimal.Decimal) (*dto.ProductResponse, error) {
	product, err := uc.store.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	rec := signal.Recommend(product, candidate)
	if rec.Kind != signal.RecommendIncrease && rec.Kind != signal.RecommendDecrease {
		return nil, domain.ErrNoRecommendation
	}
	updated, err := uc.store.SetPrice(productID, rec.SuggestedPrice)
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// ManualSave fija el precio tal cual lo escribió el dueño, sin redondeos ni
// ajustes del motor.
func (uc *PricingUseCase) ManualSave(productID string, price decimal.Decimal) (*dto.ProductResponse, error) {
	updated, err := uc.store.SetPrice(productID, price)
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

func toRecommendationResponse(productID string, rec signal.PriceRecommendation) *dto.PriceRecommendationResponse {
	out := &dto.PriceRecommendationResponse{
		ProductID: productID,
		Kind:      string(rec.Kind),
		Rationale: rec.Rationale,
	}
	if rec.Kind == signal.RecommendIncrease || rec.Kind == signal.RecommendDecrease {
		mult := rec.SuggestedMultiplier
		price := rec.SuggestedPrice
		out.SuggestedMultiplier = &mult
		out.SuggestedPrice = &price
	}
	return out
}
