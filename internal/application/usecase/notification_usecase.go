package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/application/ports"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
	"github.com/tu-usuario/tracksmart-api/internal/domain/repository"
	"github.com/tu-usuario/tracksmart-api/internal/domain/signal"
)

// NotificationUseCase expone la campana de notificaciones, las listas de la
// vista de alertas y la exportación del reporte.
type NotificationUseCase struct {
	store repository.EntityStore
	pdf   ports.ReportPDFGenerator
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(store repository.EntityStore, pdf ports.ReportPDFGenerator) *NotificationUseCase {
	return &NotificationUseCase{store: store, pdf: pdf}
}

// List devuelve la campana vigente y el contador de no leídas.
func (uc *NotificationUseCase) List() *dto.NotificationListResponse {
	return toNotificationList(uc.store.Notifications())
}

// MarkAllRead marca toda la campana como leída y la devuelve.
func (uc *NotificationUseCase) MarkAllRead() *dto.NotificationListResponse {
	return toNotificationList(uc.store.MarkAllNotificationsRead())
}

// AlertFeeds devuelve las listas de la vista de alertas.
func (uc *NotificationUseCase) AlertFeeds() *dto.AlertFeedsResponse {
	feeds := uc.store.AlertFeeds()

	out := &dto.AlertFeedsResponse{
		StockAlerts:   []dto.StockAlertDTO{},
		Opportunities: []dto.OpportunityDTO{},
	}
	for _, p := range feeds.StockAlerts {
		out.StockAlerts = append(out.StockAlerts, dto.StockAlertDTO{
			ProductID:   p.ID,
			ProductName: p.Name,
			Stock:       p.Stock,
			StockHealth: string(signal.ClassifyStock(p)),
		})
	}
	for _, p := range feeds.Opportunities {
		out.Opportunities = append(out.Opportunities, dto.OpportunityDTO{
			ProductID:   p.ID,
			ProductName: p.Name,
			Stock:       p.Stock,
			DemandLevel: string(signal.ClassifyDemand(p)),
		})
	}
	return out
}

// alertReport es el cuerpo serializable del reporte exportado.
type alertReport struct {
	Notifications []dto.NotificationResponse `json:"notifications"`
	Alerts        dto.AlertFeedsResponse     `json:"alerts"`
}

// Export arma el reporte de alertas en el formato pedido: "json", "text" o
// "pdf". Devuelve los bytes y el content type para la descarga.
func (uc *NotificationUseCase) Export(ctx context.Context, format string) ([]byte, string, error) {
	switch strings.ToLower(format) {
	case "json":
		report := alertReport{
			Notifications: uc.List().Items,
			Alerts:        *uc.AlertFeeds(),
		}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil

	case "text":
		return []byte(uc.textReport()), "text/plain; charset=utf-8", nil

	case "pdf":
		data, err := uc.pdf.GenerateAlertReport(ctx, uc.store.Notifications(), uc.store.AlertFeeds())
		if err != nil {
			return nil, "", fmt.Errorf("reporte pdf: %w", err)
		}
		return data, "application/pdf", nil
	}
	return nil, "", domain.ErrInvalidInput
}

func (uc *NotificationUseCase) textReport() string {
	var b strings.Builder
	b.WriteString("TrackSmart Alert Report\n")
	b.WriteString("=======================\n\n")

	b.WriteString("Notifications\n")
	notifs := uc.store.Notifications()
	if len(notifs) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, n := range notifs {
		status := "unread"
		if n.Read {
			status = "read"
		}
		fmt.Fprintf(&b, "  [%s] %s: %s (%s)\n", n.Timestamp.Format("2006-01-02 15:04"), n.Title, n.Message, status)
	}

	feeds := uc.store.AlertFeeds()
	b.WriteString("\nRestock List\n")
	if len(feeds.StockAlerts) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, p := range feeds.StockAlerts {
		fmt.Fprintf(&b, "  %s: %d units left\n", p.Name, p.Stock)
	}

	b.WriteString("\nHigh Demand Opportunities\n")
	if len(feeds.Opportunities) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, p := range feeds.Opportunities {
		fmt.Fprintf(&b, "  %s: %d units in stock\n", p.Name, p.Stock)
	}
	return b.String()
}

func toNotificationList(notifications []entity.Notification) *dto.NotificationListResponse {
	out := &dto.NotificationListResponse{Items: []dto.NotificationResponse{}}
	for _, n := range notifications {
		if !n.Read {
			out.Unread++
		}
		out.Items = append(out.Items, dto.NotificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			Timestamp: n.Timestamp,
			Read:      n.Read,
			Link:      n.Link,
			ProductID: n.ProductID,
		})
	}
	return out
}
