package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandLevel es la clasificación consultiva de velocidad de venta.
// Se recibe de una fuente externa (importación, semilla) o se asigna
// Medium por defecto; el motor la consume, no la recalcula.
type DemandLevel string

const (
	DemandLow    DemandLevel = "Low"
	DemandMedium DemandLevel = "Medium"
	DemandHigh   DemandLevel = "High"
)

// Valid reporta si el nivel pertenece al conjunto cerrado Low/Medium/High.
func (d DemandLevel) Valid() bool {
	switch d {
	case DemandLow, DemandMedium, DemandHigh:
		return true
	}
	return false
}

// Product representa un artículo del inventario de la tienda.
// Price es el precio base (el último guardado); los candidatos sin guardar
// viven fuera de la entidad. Stock y Price nunca pueden quedar negativos:
// las mutaciones del almacén rechazan esas entradas.
type Product struct {
	ID                string
	Name              string
	Category          string
	Price             decimal.Decimal // precio base de venta (último guardado)
	Stock             int
	DemandLevel       DemandLevel
	PurchaseFrequency int // compras recientes registradas; desempata rankings
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
