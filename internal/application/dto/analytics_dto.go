package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenuePointDTO un punto de la serie de ingresos.
type RevenuePointDTO struct {
	Label       string          `json:"label"`
	BucketStart time.Time       `json:"bucket_start"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// TrendDTO anotación de tendencia del tramo final de la serie.
type TrendDTO struct {
	Direction string `json:"direction"`
	Note      string `json:"note"`
}

// RevenueSeriesResponse respuesta de GET /api/analytics/revenue.
type RevenueSeriesResponse struct {
	ProductID   string            `json:"product_id"`
	Granularity string            `json:"granularity"`
	Points      []RevenuePointDTO `json:"points"`
	Trend       TrendDTO          `json:"trend"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: los KPIs de la
// cabecera del dashboard más el Top-5 por frecuencia de compra.
type DashboardSummaryDTO struct {
	TotalProducts       int               `json:"total_products"`
	CriticalStockCount  int               `json:"critical_stock_count"`
	LowStockCount       int               `json:"low_stock_count"`
	UnreadNotifications int               `json:"unread_notifications"`
	InventoryValue      decimal.Decimal   `json:"inventory_value"`
	SalesLastWeek       int               `json:"sales_last_week"`
	TopProducts         []ProductResponse `json:"top_products"`
}
