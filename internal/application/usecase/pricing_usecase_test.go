package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
	"github.com/tu-usuario/tracksmart-api/internal/infrastructure/memory"
)

func seedProduct(t *testing.T, store *memory.Store, demand string, stock int) string {
	t.Helper()
	products := NewProductUseCase(store)
	created, err := products.Create(dto.CreateProductRequest{
		Name:        "Smartwatch Pro",
		Category:    "Electronics",
		Price:       decimal.NewFromInt(100),
		Stock:       stock,
		DemandLevel: demand,
	})
	require.NoError(t, err)
	return created.ID
}

func TestPricing_Quote_NoTocaElPrecio(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, "High", 5)
	uc := NewPricingUseCase(store)

	rec, err := uc.Quote(id, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, "suggest_increase", rec.Kind)
	require.NotNil(t, rec.SuggestedPrice)
	assert.True(t, rec.SuggestedPrice.Equal(decimal.NewFromInt(110)))

	product, err := store.GetProduct(id)
	require.NoError(t, err)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(100)), "Quote es de solo lectura")
}

func TestPricing_Quote_MaintainSinSugerencia(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, "Medium", 30)
	uc := NewPricingUseCase(store)

	rec, err := uc.Quote(id, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, "maintain", rec.Kind)
	assert.Nil(t, rec.SuggestedPrice, "maintain no trae precio sugerido")
	assert.Nil(t, rec.SuggestedMultiplier)
}

func TestPricing_ApplyRecommendation_PersisteElSugerido(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, "Low", 45)
	uc := NewPricingUseCase(store)

	updated, err := uc.ApplyRecommendation(id, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(90)),
		"se persiste el precio sugerido (base × 0.90), no el candidato")

	product, err := store.GetProduct(id)
	require.NoError(t, err)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(90)))
}

func TestPricing_ApplyRecommendation_SinSugerenciaFalla(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, "Medium", 30)
	uc := NewPricingUseCase(store)

	_, err := uc.ApplyRecommendation(id, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, domain.ErrNoRecommendation)

	product, err := store.GetProduct(id)
	require.NoError(t, err)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(100)), "el precio no debe cambiar")
}

func TestPricing_ManualSave_GuardaLiteral(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, "High", 5)
	uc := NewPricingUseCase(store)

	manual := decimal.NewFromFloat(123.45)
	updated, err := uc.ManualSave(id, manual)
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(manual), "el guardado manual no redondea ni ajusta")
}

func TestPricing_ProductoInexistente(t *testing.T) {
	store := memory.NewStore()
	uc := NewPricingUseCase(store)

	_, err := uc.Quote("fantasma", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
