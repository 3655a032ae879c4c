package dto

import "time"

// NotificationResponse una entrada de la campana.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	Link      string    `json:"link,omitempty"`
	ProductID string    `json:"product_id,omitempty"`
}

// NotificationListResponse la campana completa más el contador de no leídas.
type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Unread int                    `json:"unread"`
}

// StockAlertDTO una fila de la lista de reposición de la vista de alertas.
type StockAlertDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
	StockHealth string `json:"stock_health"`
}

// OpportunityDTO una fila de la lista de oportunidades de demanda alta.
type OpportunityDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
	DemandLevel string `json:"demand_level"`
}

// AlertFeedsResponse las dos listas de la vista de alertas. Independientes de
// la campana: no las acota el tope de notificaciones.
type AlertFeedsResponse struct {
	StockAlerts   []StockAlertDTO  `json:"stock_alerts"`
	Opportunities []OpportunityDTO `json:"opportunities"`
}
