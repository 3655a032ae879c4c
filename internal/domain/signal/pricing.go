package signal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
)

// RecommendationKind resultado discreto del árbol de decisión de precios.
type RecommendationKind string

const (
	RecommendWarnHike RecommendationKind = "warn_hike"
	RecommendWarnDrop RecommendationKind = "warn_drop"
	RecommendIncrease RecommendationKind = "suggest_increase"
	RecommendDecrease RecommendationKind = "suggest_decrease"
	RecommendMaintain RecommendationKind = "maintain"
)

// PriceRecommendation es el veredicto del motor sobre un precio candidato.
// SuggestedMultiplier y SuggestedPrice solo se llenan en las variantes
// suggest_*; el multiplicador se aplica sobre el precio base (el último
// guardado), nunca sobre el candidato que se está tecleando.
type PriceRecommendation struct {
	Kind                RecommendationKind
	Rationale           string
	SuggestedMultiplier decimal.Decimal
	SuggestedPrice      decimal.Decimal
}

// Umbrales del árbol de decisión. Los límites de ratio son estrictos donde
// importa: 2.0 exacto no es alza extrema y 0.4 exacto no es caída extrema.
var (
	one               = decimal.NewFromInt(1)
	hundred           = decimal.NewFromInt(100)
	ratioHikeLimit    = decimal.NewFromInt(2)      // > 2.0 → warn_hike
	ratioDropLimit    = decimal.NewFromFloat(0.4)  // < 0.4 (y candidato > 0) → warn_drop
	ratioNearBaseline = decimal.NewFromFloat(1.05) // banda de "precio aún sin ajustar"
	ratioOptimizedTop = decimal.NewFromFloat(1.20) // techo de "ya optimizado"
	ratioPromoFloor   = decimal.NewFromFloat(0.95) // piso que delata precio promocional
	hikeMultiplier    = decimal.NewFromFloat(1.10) // +10% sugerido
	dropMultiplier    = decimal.NewFromFloat(0.90) // -10% sugerido
)

// Recommend evalúa un precio candidato contra el precio base del producto y
// devuelve una recomendación. Es una función pura: el mismo (producto,
// candidato) produce siempre el mismo resultado.
//
// El orden de las reglas importa: las salvaguardas de alza/caída extrema
// tienen prioridad sobre las sugerencias basadas en demanda.
func Recommend(p entity.Product, candidate decimal.Decimal) PriceRecommendation {
	baseline := p.Price

	// Con precio base 0 no hay ratio definible; se trata como 1.0 para que
	// las reglas de demanda sigan funcionando sin dividir por cero.
	ratio := one
	if baseline.IsPositive() {
		ratio = candidate.Div(baseline)
	}

	// 1. Alza extrema: estrictamente mayor a 2x.
	if ratio.GreaterThan(ratioHikeLimit) {
		pct := ratio.Sub(one).Mul(hundred).Round(0)
		return PriceRecommendation{
			Kind:      RecommendWarnHike,
			Rationale: fmt.Sprintf("Extreme price hike! A %s%% increase will severely reduce customer demand in this region.", pct),
		}
	}

	// 2. Caída extrema. Un candidato de exactamente 0 no dispara la alarma:
	// la condición candidate > 0 lo deja caer a las reglas siguientes.
	if ratio.LessThan(ratioDropLimit) && candidate.IsPositive() {
		return PriceRecommendation{
			Kind:      RecommendWarnDrop,
			Rationale: fmt.Sprintf("Significant price drop detected. Ensure your profit margins are protected at $%s.", candidate),
		}
	}

	demand := ClassifyDemand(p)

	// 3. Demanda alta con stock bajo: espacio para subir.
	if demand == entity.DemandHigh && p.Stock < RestockAdvisoryThreshold {
		switch {
		case ratio.LessThan(ratioNearBaseline):
			suggested := SuggestedPrice(baseline, hikeMultiplier)
			return PriceRecommendation{
				Kind:                RecommendIncrease,
				Rationale:           fmt.Sprintf("Demand is high and stock is low (%d). Increase price to $%s to maximize profit.", p.Stock, suggested),
				SuggestedMultiplier: hikeMultiplier,
				SuggestedPrice:      suggested,
			}
		case ratio.LessThanOrEqual(ratioOptimizedTop):
			return PriceRecommendation{
				Kind:      RecommendMaintain,
				Rationale: "Price is currently optimized for high demand. Good job!",
			}
		}
		// ratio > 1.20 sin llegar a 2x: cae al maintain por defecto.
	}

	// 4. Demanda baja con exceso de stock: liquidar.
	if demand == entity.DemandLow && p.Stock > OverstockThreshold {
		if ratio.GreaterThan(ratioPromoFloor) {
			suggested := SuggestedPrice(baseline, dropMultiplier)
			return PriceRecommendation{
				Kind:                RecommendDecrease,
				Rationale:           fmt.Sprintf("Low demand and high stock (%d). Reduce price to $%s to clear inventory faster.", p.Stock, suggested),
				SuggestedMultiplier: dropMultiplier,
				SuggestedPrice:      suggested,
			}
		}
		return PriceRecommendation{
			Kind:      RecommendMaintain,
			Rationale: "Promotional price is active. Monitoring for demand recovery.",
		}
	}

	// 5. Por defecto: mantener.
	return PriceRecommendation{
		Kind:      RecommendMaintain,
		Rationale: "Price is within the expected range for current demand. No change needed.",
	}
}

// SuggestedPrice calcula el precio a confirmar al aplicar una recomendación:
// round(base × multiplicador), redondeado a unidad entera como muestra la UI.
func SuggestedPrice(baseline, multiplier decimal.Decimal) decimal.Decimal {
	return baseline.Mul(multiplier).Round(0)
}
