package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
	"github.com/tu-usuario/tracksmart-api/internal/domain/signal"
)

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyStock: los límites son estrictos (< 10 y < 20), así que 10 y 20
// caen en el nivel superior.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyStock_Limites(t *testing.T) {
	cases := []struct {
		stock int
		want  signal.StockHealth
	}{
		{0, signal.StockCritical},
		{9, signal.StockCritical},
		{10, signal.StockLow}, // 10 ya no es crítico
		{15, signal.StockLow},
		{19, signal.StockLow},
		{20, signal.StockHealthy}, // 20 ya no es bajo
		{120, signal.StockHealthy},
	}
	for _, tc := range cases {
		got := signal.ClassifyStock(entity.Product{Stock: tc.stock})
		assert.Equal(t, tc.want, got, "stock=%d", tc.stock)
	}
}

func TestClassifyDemand_NivelSembrado(t *testing.T) {
	p := entity.Product{DemandLevel: entity.DemandHigh}
	assert.Equal(t, entity.DemandHigh, signal.ClassifyDemand(p),
		"el motor consume el nivel sembrado, no lo recalcula")
}

func TestClassifyDemand_DefaultMedium(t *testing.T) {
	assert.Equal(t, entity.DemandMedium, signal.ClassifyDemand(entity.Product{}),
		"sin nivel sembrado se asume Medium")
	assert.Equal(t, entity.DemandMedium, signal.ClassifyDemand(entity.Product{DemandLevel: "Extreme"}),
		"un nivel fuera del conjunto cerrado también cae a Medium")
}

// ──────────────────────────────────────────────────────────────────────────────
// TopProducts: frecuencia descendente, empates en orden original.
// ──────────────────────────────────────────────────────────────────────────────

func TestTopProducts_OrdenYEmpates(t *testing.T) {
	products := []entity.Product{
		{ID: "a", PurchaseFrequency: 12},
		{ID: "b", PurchaseFrequency: 88},
		{ID: "c", PurchaseFrequency: 12}, // empata con "a", debe quedar después
		{ID: "d", PurchaseFrequency: 31},
	}

	top := signal.TopProducts(products, 3)
	assert.Len(t, top, 3)
	assert.Equal(t, "b", top[0].ID)
	assert.Equal(t, "d", top[1].ID)
	assert.Equal(t, "a", top[2].ID, "empate resuelto por orden original")
}

func TestTopProducts_NoMutaElOriginal(t *testing.T) {
	products := []entity.Product{
		{ID: "a", PurchaseFrequency: 1},
		{ID: "b", PurchaseFrequency: 9},
	}
	_ = signal.TopProducts(products, 0)
	assert.Equal(t, "a", products[0].ID, "el listado de entrada no debe reordenarse")
}
