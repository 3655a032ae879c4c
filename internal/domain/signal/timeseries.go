package signal

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tracksmart-api/internal/domain"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
)

// Granularity es el período de agrupación de la serie de ingresos.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

// ParseGranularity valida el valor recibido por query param.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDaily, GranularityWeekly, GranularityMonthly, GranularityYearly:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("granularidad %q: %w", s, domain.ErrInvalidInput)
}

// RevenuePoint es un punto de la serie: ingreso total de un período.
type RevenuePoint struct {
	BucketLabel string
	BucketStart time.Time
	Revenue     decimal.Decimal
}

// lookbackCutoff devuelve el corte de antigüedad por granularidad. Las
// ventanas son asimétricas a propósito: "monthly" mira 30 días, menos que los
// 84 de "weekly".
// TODO: confirmar con producto si "monthly" debería agrupar por mes
// calendario sobre una ventana anual; hoy se replica el comportamiento
// heredado (semanas calendario sobre 30 días).
func lookbackCutoff(g Granularity, now time.Time) time.Time {
	switch g {
	case GranularityDaily:
		return now.AddDate(0, 0, -14)
	case GranularityWeekly:
		return now.AddDate(0, 0, -84)
	case GranularityMonthly:
		return now.AddDate(0, 0, -30)
	default: // yearly
		return now.AddDate(0, -12, 0)
	}
}

// Aggregate agrupa las transacciones de un producto en una serie de ingresos
// por período, ordenada ascendente por el instante de inicio del período (no
// por etiqueta). Sin producto seleccionado devuelve una serie vacía: el
// caller pinta un estado vacío, no un error. Las transacciones no necesitan
// venir ordenadas ni todas resolver a un producto vivo.
func Aggregate(transactions []entity.Transaction, productID string, g Granularity, now time.Time) []RevenuePoint {
	points := []RevenuePoint{}
	if productID == "" {
		return points
	}

	cutoff := lookbackCutoff(g, now)
	buckets := make(map[time.Time]decimal.Decimal)
	for _, tx := range transactions {
		if tx.ProductID != productID || tx.Date.Before(cutoff) {
			continue
		}
		start := bucketStart(g, tx.Date.In(now.Location()))
		buckets[start] = buckets[start].Add(tx.Revenue())
	}

	for start, revenue := range buckets {
		points = append(points, RevenuePoint{
			BucketLabel: bucketLabel(g, start),
			BucketStart: start,
			Revenue:     revenue,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].BucketStart.Before(points[j].BucketStart)
	})
	return points
}

// bucketStart calcula el inicio del período que contiene el instante t.
// weekly y monthly comparten la misma regla: semana calendario que empieza
// en domingo (ver nota en lookbackCutoff).
func bucketStart(g Granularity, t time.Time) time.Time {
	year, month, day := t.Date()
	switch g {
	case GranularityDaily:
		return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	case GranularityWeekly, GranularityMonthly:
		midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
		return midnight.AddDate(0, 0, -int(midnight.Weekday()))
	default: // yearly
		return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	}
}

// bucketLabel arma la etiqueta de display. Weekly y monthly agrupan igual
// pero llevan prefijos distintos porque se muestran en contextos distintos.
func bucketLabel(g Granularity, start time.Time) string {
	switch g {
	case GranularityDaily:
		return start.Format("Jan 02")
	case GranularityWeekly:
		return "Week of " + start.Format("Jan 02")
	case GranularityMonthly:
		return "Period of " + start.Format("Jan 02")
	default: // yearly
		return start.Format("Jan 2006")
	}
}

// TrendDirection dirección del tramo final de la serie.
type TrendDirection string

const (
	TrendUpward       TrendDirection = "upward"
	TrendDownward     TrendDirection = "downward"
	TrendStable       TrendDirection = "stable"
	TrendInsufficient TrendDirection = "insufficient_data"
)

// trendBand: variaciones dentro de ±5% se consideran estables.
var trendBand = decimal.NewFromFloat(0.05)

// TrendNote compara los dos últimos puntos de la serie y anota la dirección.
// Con menos de dos puntos no hay tendencia que declarar.
type TrendNote struct {
	Direction TrendDirection
	Note      string
}

// Trend deriva la anotación de tendencia de una serie ya ordenada.
func Trend(points []RevenuePoint) TrendNote {
	if len(points) < 2 {
		return TrendNote{Direction: TrendInsufficient, Note: "Not enough data to determine a trend."}
	}
	last := points[len(points)-1].Revenue
	prior := points[len(points)-2].Revenue

	if prior.IsZero() {
		if last.IsPositive() {
			return TrendNote{Direction: TrendUpward, Note: "Revenue is trending upward."}
		}
		return TrendNote{Direction: TrendStable, Note: "Revenue is stable."}
	}

	change := last.Sub(prior).Div(prior)
	switch {
	case change.GreaterThan(trendBand):
		return TrendNote{Direction: TrendUpward, Note: "Revenue is trending upward."}
	case change.LessThan(trendBand.Neg()):
		return TrendNote{Direction: TrendDownward, Note: "Revenue is trending downward."}
	default:
		return TrendNote{Direction: TrendStable, Note: "Revenue is stable."}
	}
}
