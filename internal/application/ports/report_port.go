package ports

import (
	"context"

	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
	"github.com/tu-usuario/tracksmart-api/internal/domain/signal"
)

// ReportPDFGenerator define el puerto de salida para el reporte PDF de
// alertas que el dueño descarga desde la campana.
type ReportPDFGenerator interface {
	GenerateAlertReport(
		ctx context.Context,
		notifications []entity.Notification,
		feeds signal.AlertFeeds,
	) ([]byte, error)
}
