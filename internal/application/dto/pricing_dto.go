package dto

import "github.com/shopspring/decimal"

// PriceQuoteRequest entrada para evaluar un precio candidato contra el motor
// de recomendaciones.
type PriceQuoteRequest struct {
	CandidatePrice decimal.Decimal `json:"candidate_price"`
}

// PriceRecommendationResponse veredicto del motor para un candidato.
// SuggestedMultiplier y SuggestedPrice solo vienen en recomendaciones de
// ajuste (suggest_increase / suggest_decrease).
type PriceRecommendationResponse struct {
	ProductID           string           `json:"product_id"`
	Kind                string           `json:"kind"`
	Rationale           string           `json:"rationale"`
	SuggestedMultiplier *decimal.Decimal `json:"suggested_multiplier,omitempty"`
	SuggestedPrice      *decimal.Decimal `json:"suggested_price,omitempty"`
}

// ManualPriceRequest entrada para fijar un precio a mano, sin pasar por la
// recomendación.
type ManualPriceRequest struct {
	Price decimal.Decimal `json:"price"`
}
