// Package pdf implementa el reporte de alertas descargable desde la campana.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: TrackSmart Alert Report + fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTIFICACIONES: tabla Fecha | Título | Mensaje | Estado     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  REPOSICIÓN: tabla Producto | Unidades | Salud               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OPORTUNIDADES: tabla Producto | Unidades | Demanda          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/tracksmart-api/internal/application/ports"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
	"github.com/tu-usuario/tracksmart-api/internal/domain/signal"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 93}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// Verificar en tiempo de compilación que el generador implementa el puerto.
var _ ports.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateAlertReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateAlertReport(
	_ context.Context,
	notifications []entity.Notification,
	feeds signal.AlertFeeds,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("TrackSmart Alert Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Notifications"))
	if len(notifications) == 0 {
		m.AddRows(emptyRow())
	}
	for _, n := range notifications {
		m.AddRows(notificationRow(n))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("Restock List"))
	if len(feeds.StockAlerts) == 0 {
		m.AddRows(emptyRow())
	}
	for _, p := range feeds.StockAlerts {
		m.AddRows(stockAlertRow(p))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("High Demand Opportunities"))
	if len(feeds.Opportunities) == 0 {
		m.AddRows(emptyRow())
	}
	for _, p := range feeds.Opportunities {
		m.AddRows(opportunityRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte + fecha de generación.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("TrackSmart Alert Report", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	))
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("(none)", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
	))
}

func notificationRow(n entity.Notification) core.Row {
	status := "unread"
	statusColor := colorAlert
	if n.Read {
		status = "read"
		statusColor = colorGray
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(
			n.Timestamp.Format("02/01 15:04"),
			props.Text{Size: 8, Top: 1, Color: colorGray},
		)),
		col.New(3).Add(text.New(n.Title, props.Text{Size: 8, Style: fontstyle.Bold, Top: 1})),
		col.New(6).Add(text.New(n.Message, props.Text{Size: 8, Top: 1})),
		col.New(1).Add(text.New(status, props.Text{
			Size: 8, Top: 1, Align: align.Right, Color: statusColor,
		})),
	)
}

func stockAlertRow(p entity.Product) core.Row {
	return row.New(7).Add(
		col.New(7).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(
			fmt.Sprintf("%d units", p.Stock),
			props.Text{Size: 8, Top: 1, Align: align.Right},
		)),
		col.New(3).Add(text.New(
			string(signal.ClassifyStock(p)),
			props.Text{Size: 8, Top: 1, Align: align.Right, Color: colorAlert},
		)),
	)
}

func opportunityRow(p entity.Product) core.Row {
	return row.New(7).Add(
		col.New(7).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(
			fmt.Sprintf("%d units", p.Stock),
			props.Text{Size: 8, Top: 1, Align: align.Right},
		)),
		col.New(3).Add(text.New(
			string(p.DemandLevel)+" demand",
			props.Text{Size: 8, Top: 1, Align: align.Right, Color: colorPrimary},
		)),
	)
}
