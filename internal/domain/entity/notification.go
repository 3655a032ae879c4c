package entity

import "time"

// NotificationType conjunto cerrado de orígenes de notificación.
type NotificationType string

const (
	NotificationLowStock NotificationType = "low_stock"
	NotificationInsight  NotificationType = "insight"
	NotificationTrend    NotificationType = "trend"
)

// Notification es derivada y efímera: se regenera en cada mutación del
// almacén. El ID es una función pura de (tipo, entidad origen), lo que hace
// idempotente la de-duplicación entre recomputaciones.
type Notification struct {
	ID        string
	Type      NotificationType
	Title     string
	Message   string
	Timestamp time.Time
	Read      bool
	Link      string // vista destino al hacer clic (ej. "alerts")
	ProductID string
}

// StockNotificationID deriva el ID determinista de una alerta de stock bajo.
func StockNotificationID(productID string) string {
	return "notif-stock-" + productID
}
