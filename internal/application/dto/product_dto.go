package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para registrar un producto del inventario.
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Category          string          `json:"category"`
	Price             decimal.Decimal `json:"price"`
	Stock             int             `json:"stock"`
	DemandLevel       string          `json:"demand_level" validate:"omitempty,oneof=Low Medium High"`
	PurchaseFrequency int             `json:"purchase_frequency"`
}

// ProductResponse salida de un producto, con su salud de stock ya derivada.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Price             decimal.Decimal `json:"price"`
	Stock             int             `json:"stock"`
	StockHealth       string          `json:"stock_health"`
	DemandLevel       string          `json:"demand_level"`
	PurchaseFrequency int             `json:"purchase_frequency"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse listado completo de productos (más reciente primero).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
