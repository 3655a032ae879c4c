// Package signal implementa el motor de señales de inventario: clasificación
// de salud de stock/demanda, recomendaciones de precio, agregación de alertas
// y series de ingresos por períodos. Todas las funciones son puras: reciben
// el estado como parámetro y no tocan el almacén; el pipeline de mutaciones
// del almacén es quien decide cuándo invocarlas.
package signal

import (
	"sort"

	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
)

// Umbrales de stock. Hay tres consumidores con criterios distintos y los
// tres valores deben mantenerse nombrados para que las copias no diverjan:
//
//   - CriticalStockThreshold (10): dispara las notificaciones low_stock de la
//     campana y marca la salud "Critical".
//   - RestockAdvisoryThreshold (15): alimenta la vista de alertas y la
//     selección de producto objetivo del análisis de insights.
//   - LowStockCeiling (20): techo blando del nivel "Low" usado por la
//     clasificación conversacional.
const (
	CriticalStockThreshold   = 10
	RestockAdvisoryThreshold = 15
	LowStockCeiling          = 20
)

// OverstockThreshold marca exceso de inventario: con demanda baja y stock por
// encima de este valor el motor de precios sugiere liquidar.
const OverstockThreshold = 40

// StockHealth es el nivel de salud de inventario de un producto.
type StockHealth string

const (
	StockHealthy  StockHealth = "Healthy"
	StockLow      StockHealth = "Low"
	StockCritical StockHealth = "Critical"
)

// ClassifyStock clasifica la salud del inventario de un producto.
func ClassifyStock(p entity.Product) StockHealth {
	switch {
	case p.Stock < CriticalStockThreshold:
		return StockCritical
	case p.Stock < LowStockCeiling:
		return StockLow
	default:
		return StockHealthy
	}
}

// ClassifyDemand devuelve el nivel de demanda del producto. El nivel viene
// sembrado externamente; si falta o es inválido se asume Medium, el valor
// por defecto de productos recién creados sin historial.
func ClassifyDemand(p entity.Product) entity.DemandLevel {
	if !p.DemandLevel.Valid() {
		return entity.DemandMedium
	}
	return p.DemandLevel
}

// TopProducts devuelve los n productos con mayor frecuencia de compra.
// El orden es determinista: empates conservan el orden original del listado
// (sort estable), que coincide con el orden de inserción del almacén.
// Con n <= 0 devuelve el ranking completo.
func TopProducts(products []entity.Product, n int) []entity.Product {
	ranked := make([]entity.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PurchaseFrequency > ranked[j].PurchaseFrequency
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
