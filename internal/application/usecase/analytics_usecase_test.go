package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
	"github.com/tu-usuario/tracksmart-api/internal/infrastructure/memory"
)

func TestAnalytics_RevenueSeries(t *testing.T) {
	store := memory.NewStore()
	products := NewProductUseCase(store)
	created, err := products.Create(dto.CreateProductRequest{
		Name: "Laptop", Price: decimal.NewFromInt(900), Stock: 20,
	})
	require.NoError(t, err)

	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.AppendTransactions([]entity.Transaction{
		{ID: "t1", ProductID: created.ID, Date: now.AddDate(0, 0, -2), Quantity: 1, Price: decimal.NewFromInt(900)},
		{ID: "t2", ProductID: created.ID, Date: now.AddDate(0, 0, -1), Quantity: 2, Price: decimal.NewFromInt(900)},
	}))

	uc := NewAnalyticsUseCase(store)
	uc.now = func() time.Time { return now }

	series, err := uc.RevenueSeries(created.ID, "daily")
	require.NoError(t, err)
	require.Len(t, series.Points, 2)
	assert.Equal(t, "upward", series.Trend.Direction, "de 900 a 1800 es subida")

	_, err = uc.RevenueSeries(created.ID, "hourly")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	empty, err := uc.RevenueSeries("", "daily")
	require.NoError(t, err)
	assert.Empty(t, empty.Points)
	assert.Equal(t, "insufficient_data", empty.Trend.Direction)
}

func TestAnalytics_DashboardSummary(t *testing.T) {
	store := memory.NewStore()
	products := NewProductUseCase(store)

	seed := []dto.CreateProductRequest{
		{Name: "Laptop", Price: decimal.NewFromInt(900), Stock: 2, PurchaseFrequency: 10},
		{Name: "Mouse", Price: decimal.NewFromInt(20), Stock: 12, PurchaseFrequency: 44},
		{Name: "Desk", Price: decimal.NewFromInt(150), Stock: 30, PurchaseFrequency: 2},
	}
	for _, req := range seed {
		_, err := products.Create(req)
		require.NoError(t, err)
	}

	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.AppendTransactions([]entity.Transaction{
		{ID: "t1", ProductID: "x", Date: now.AddDate(0, 0, -3), Quantity: 1, Price: decimal.NewFromInt(10)},
		{ID: "t2", ProductID: "x", Date: now.AddDate(0, 0, -20), Quantity: 1, Price: decimal.NewFromInt(10)},
	}))

	uc := NewAnalyticsUseCase(store)
	uc.now = func() time.Time { return now }
	summary := uc.DashboardSummary()

	assert.Equal(t, 3, summary.TotalProducts)
	assert.Equal(t, 1, summary.SalesLastWeek, "solo la venta de hace 3 días cuenta")
	assert.Equal(t, 1, summary.CriticalStockCount, "Laptop")
	assert.Equal(t, 1, summary.LowStockCount, "Mouse")
	assert.Equal(t, 1, summary.UnreadNotifications, "la alerta del Laptop")

	// 900×2 + 20×12 + 150×30 = 6540
	assert.True(t, summary.InventoryValue.Equal(decimal.NewFromInt(6540)))

	require.Len(t, summary.TopProducts, 3)
	assert.Equal(t, "Mouse", summary.TopProducts[0].Name, "ranking por frecuencia de compra")
}
