package signal

import (
	"fmt"
	"sort"
	"time"

	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
)

// MaxNotifications es el tope de la campana de notificaciones: se conservan
// las 10 entradas más recientes, las nuevas primero.
const MaxNotifications = 10

// DeriveNotifications regenera la lista de notificaciones tras una mutación
// del almacén y la fusiona con la lista previa:
//
//   - cada producto con stock bajo el umbral estricto produce una entrada
//     low_stock con ID determinista ("notif-stock-" + productID);
//   - los IDs ya presentes en la lista previa no se duplican — la entrada
//     previa se conserva tal cual, incluido su flag Read, de modo que una
//     recomputación jamás resucita como no-leída una alerta que el usuario
//     ya marcó leída sin que cambiara su condición de origen;
//   - las entradas nuevas se anteponen y el resultado se trunca al tope.
//
// La función es idempotente: dos invocaciones seguidas sin mutación de por
// medio devuelven listas idénticas.
func DeriveNotifications(products []entity.Product, previous []entity.Notification, now time.Time) []entity.Notification {
	var fresh []entity.Notification
	for _, p := range products {
		if p.Stock >= CriticalStockThreshold {
			continue
		}
		fresh = append(fresh, entity.Notification{
			ID:        entity.StockNotificationID(p.ID),
			Type:      entity.NotificationLowStock,
			Title:     "Low Stock Warning",
			Message:   fmt.Sprintf("%s only has %d units left.", p.Name, p.Stock),
			Timestamp: now,
			Read:      false,
			Link:      "alerts",
			ProductID: p.ID,
		})
	}

	seen := make(map[string]struct{}, len(previous))
	for _, n := range previous {
		seen[n.ID] = struct{}{}
	}

	merged := make([]entity.Notification, 0, len(fresh)+len(previous))
	for _, n := range fresh {
		if _, dup := seen[n.ID]; !dup {
			merged = append(merged, n)
		}
	}
	merged = append(merged, previous...)

	if len(merged) > MaxNotifications {
		merged = merged[:MaxNotifications]
	}
	return merged
}

// MarkAllRead devuelve una copia de la lista con todos los flags Read en
// true. Es una operación explícita del usuario, independiente de cualquier
// recomputación.
func MarkAllRead(notifications []entity.Notification) []entity.Notification {
	out := make([]entity.Notification, len(notifications))
	copy(out, notifications)
	for i := range out {
		out[i].Read = true
	}
	return out
}

// AlertFeeds son las dos listas de la vista de alertas. Van separadas de la
// campana de notificaciones (consumidores distintos) y no se fusionan ni se
// truncan al tope de 10.
type AlertFeeds struct {
	// StockAlerts: productos bajo el umbral de reposición, los más urgentes
	// (menos stock) primero.
	StockAlerts []entity.Product
	// Opportunities: productos con demanda alta, en el orden original del
	// inventario.
	Opportunities []entity.Product
}

// DeriveAlertFeeds calcula las listas de la vista de alertas.
func DeriveAlertFeeds(products []entity.Product) AlertFeeds {
	var feeds AlertFeeds
	for _, p := range products {
		if p.Stock < RestockAdvisoryThreshold {
			feeds.StockAlerts = append(feeds.StockAlerts, p)
		}
		if ClassifyDemand(p) == entity.DemandHigh {
			feeds.Opportunities = append(feeds.Opportunities, p)
		}
	}
	sort.SliceStable(feeds.StockAlerts, func(i, j int) bool {
		return feeds.StockAlerts[i].Stock < feeds.StockAlerts[j].Stock
	})
	return feeds
}
