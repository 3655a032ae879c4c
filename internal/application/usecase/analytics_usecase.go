package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/domain/repository"
	"github.com/tu-usuario/tracksmart-api/internal/domain/signal"
)

// topProductsInSummary cuántos productos lleva el widget del dashboard.
const topProductsInSummary = 5

// AnalyticsUseCase arma la serie de ingresos y el resumen del dashboard.
type AnalyticsUseCase struct {
	store repository.EntityStore

	// now es inyectable para fijar las ventanas de la serie en tests.
	now func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(store repository.EntityStore) *AnalyticsUseCase {
	return &AnalyticsUseCase{store: store, now: time.Now}
}

// RevenueSeries agrega el historial de ventas del producto en la granularidad
// pedida y anota la tendencia del tramo final.
func (uc *AnalyticsUseCase) RevenueSeries(productID, granularity string) (*dto.RevenueSeriesResponse, error) {
	g, err := signal.ParseGranularity(granularity)
	if err != nil {
		return nil, err
	}

	points := signal.Aggregate(uc.store.ListTransactions(), productID, g, uc.now())
	trend := signal.Trend(points)

	out := &dto.RevenueSeriesResponse{
		ProductID:   productID,
		Granularity: string(g),
		Points:      []dto.RevenuePointDTO{},
		Trend:       dto.TrendDTO{Direction: string(trend.Direction), Note: trend.Note},
	}
	for _, p := range points {
		out.Points = append(out.Points, dto.RevenuePointDTO{
			Label:       p.BucketLabel,
			BucketStart: p.BucketStart,
			Revenue:     p.Revenue,
		})
	}
	return out, nil
}

// DashboardSummary arma los KPIs de la cabecera del dashboard.
func (uc *AnalyticsUseCase) DashboardSummary() *dto.DashboardSummaryDTO {
	products := uc.store.ListProducts()

	summary := &dto.DashboardSummaryDTO{
		TotalProducts:  len(products),
		InventoryValue: decimal.Zero,
		TopProducts:    []dto.ProductResponse{},
	}
	for _, p := range products {
		switch signal.ClassifyStock(p) {
		case signal.StockCritical:
			summary.CriticalStockCount++
		case signal.StockLow:
			summary.LowStockCount++
		}
		summary.InventoryValue = summary.InventoryValue.Add(
			p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}

	for _, n := range uc.store.Notifications() {
		if !n.Read {
			summary.UnreadNotifications++
		}
	}

	weekAgo := uc.now().AddDate(0, 0, -7)
	for _, tx := range uc.store.ListTransactions() {
		if !tx.Date.Before(weekAgo) {
			summary.SalesLastWeek++
		}
	}

	for _, p := range signal.TopProducts(products, topProductsInSummary) {
		summary.TopProducts = append(summary.TopProducts, *toProductResponse(p))
	}
	return summary
}
