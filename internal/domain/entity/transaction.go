package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction es un registro de venta inmutable: solo se agrega, nunca se
// edita. ProductID puede quedar colgando si el producto fue eliminado
// después; los consumidores deben tolerarlo y mostrarlo como artículo
// desconocido, nunca tratarlo como error fatal.
type Transaction struct {
	ID        string
	ProductID string
	Date      time.Time
	Quantity  int             // unidades vendidas, >= 1
	Price     decimal.Decimal // precio unitario al momento de la venta
}

// Revenue devuelve el ingreso de la transacción (precio × cantidad).
func (t Transaction) Revenue() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(int64(t.Quantity)))
}
