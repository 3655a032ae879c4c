package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
	"github.com/tu-usuario/tracksmart-api/internal/domain/signal"
)

// EntityStore define el puerto de persistencia del inventario completo (DIP).
// Es un único agregado: productos, transacciones y la campana de
// notificaciones viven juntos porque toda mutación de productos debe
// recomputar las notificaciones en la misma operación.
type EntityStore interface {
	// AddProduct inserta el producto al frente del listado y devuelve la
	// copia almacenada.
	AddProduct(product entity.Product) (entity.Product, error)
	GetProduct(id string) (entity.Product, error)
	// ListProducts devuelve los productos en orden de inserción (más
	// reciente primero).
	ListProducts() []entity.Product
	// SetPrice fija el precio vigente del producto.
	SetPrice(id string, price decimal.Decimal) (entity.Product, error)
	RemoveProduct(id string) error

	// AppendTransactions agrega ventas al historial. Se toleran
	// transacciones cuyo ProductID no resuelve a un producto vivo.
	AppendTransactions(transactions []entity.Transaction) error
	ListTransactions() []entity.Transaction

	// ImportBatch aplica en una sola operación los productos nuevos y las
	// transacciones de una importación.
	ImportBatch(products []entity.Product, transactions []entity.Transaction) error

	// Notifications devuelve la campana vigente, ya de-duplicada y acotada.
	Notifications() []entity.Notification
	MarkAllNotificationsRead() []entity.Notification

	// AlertFeeds devuelve las listas de la vista de alertas derivadas del
	// estado actual.
	AlertFeeds() signal.AlertFeeds
}
