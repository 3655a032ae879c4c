package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
	"github.com/tu-usuario/tracksmart-api/internal/domain/signal"
	"github.com/tu-usuario/tracksmart-api/internal/infrastructure/memory"
)

// stubPDF evita depender del generador real en tests de la capa de aplicación.
type stubPDF struct{ called bool }

func (s *stubPDF) GenerateAlertReport(_ context.Context, _ []entity.Notification, _ signal.AlertFeeds) ([]byte, error) {
	s.called = true
	return []byte("%PDF-stub"), nil
}

func notificationFixture(t *testing.T) (*NotificationUseCase, *stubPDF) {
	t.Helper()
	store := memory.NewStore()
	products := NewProductUseCase(store)

	_, err := products.Create(dto.CreateProductRequest{
		Name: "Smartwatch Pro", Price: decimal.NewFromInt(100), Stock: 4, DemandLevel: "High",
	})
	require.NoError(t, err)
	_, err = products.Create(dto.CreateProductRequest{
		Name: "Cotton T-Shirt", Price: decimal.NewFromInt(15), Stock: 80, DemandLevel: "High",
	})
	require.NoError(t, err)

	pdf := &stubPDF{}
	return NewNotificationUseCase(store, pdf), pdf
}

func TestNotifications_ListYMarkAllRead(t *testing.T) {
	uc, _ := notificationFixture(t)

	list := uc.List()
	require.Len(t, list.Items, 1, "solo el producto con stock crítico notifica")
	assert.Equal(t, 1, list.Unread)

	marked := uc.MarkAllRead()
	assert.Equal(t, 0, marked.Unread)
	assert.True(t, marked.Items[0].Read)
}

func TestNotifications_AlertFeeds(t *testing.T) {
	uc, _ := notificationFixture(t)

	feeds := uc.AlertFeeds()
	require.Len(t, feeds.StockAlerts, 1)
	assert.Equal(t, "Smartwatch Pro", feeds.StockAlerts[0].ProductName)
	assert.Equal(t, "Critical", feeds.StockAlerts[0].StockHealth)

	require.Len(t, feeds.Opportunities, 2, "ambos productos son de demanda alta")
}

func TestNotifications_ExportJSON_RoundTrip(t *testing.T) {
	uc, _ := notificationFixture(t)

	data, contentType, err := uc.Export(context.Background(), "json")
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var report struct {
		Notifications []dto.NotificationResponse `json:"notifications"`
		Alerts        dto.AlertFeedsResponse     `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(data, &report))
	require.Len(t, report.Notifications, 1)
	assert.Equal(t, "low_stock", report.Notifications[0].Type)
	assert.Len(t, report.Alerts.StockAlerts, 1)
}

func TestNotifications_ExportText(t *testing.T) {
	uc, _ := notificationFixture(t)

	data, contentType, err := uc.Export(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", contentType)
	assert.Contains(t, string(data), "Smartwatch Pro")
	assert.Contains(t, string(data), "Restock List")
}

func TestNotifications_ExportPDF_DelegaAlPuerto(t *testing.T) {
	uc, pdf := notificationFixture(t)

	data, contentType, err := uc.Export(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, pdf.called)
	assert.NotEmpty(t, data)
}

func TestNotifications_ExportFormatoDesconocido(t *testing.T) {
	uc, _ := notificationFixture(t)

	_, _, err := uc.Export(context.Background(), "xml")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
