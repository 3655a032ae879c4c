// Package importer parsea los CSV de historial de ventas que exportan las
// cajas registradoras con las que se integra el dashboard.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
)

// expectedHeader es el contrato con el exportador. El orden importa; el casing
// y los espacios alrededor de cada columna no.
var expectedHeader = []string{"product_id", "product_name", "category", "date", "units_sold", "unit_price"}

// Row una fila de venta ya validada.
type Row struct {
	ProductID   string
	ProductName string
	Category    string
	Date        time.Time
	UnitsSold   int
	UnitPrice   decimal.Decimal
}

// Result filas aceptadas más las descartadas con su motivo.
type Result struct {
	Rows    []Row
	Skipped []dto.SkippedRowDTO
}

// Parse lee el CSV completo. Una cabecera que no coincide con el contrato es
// domain.ErrCSVInvalidHeader; filas individuales malformadas se descartan con
// su número de línea y motivo, pero si ninguna fila sobrevive el archivo entero
// se rechaza con domain.ErrCSVNoRows.
func Parse(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.ErrCSVInvalidHeader
	}
	if !headerMatches(header) {
		return nil, domain.ErrCSVInvalidHeader
	}

	result := &Result{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped = append(result.Skipped, dto.SkippedRowDTO{Line: line, Reason: "malformed row"})
			continue
		}
		row, reason := parseRecord(record)
		if reason != "" {
			result.Skipped = append(result.Skipped, dto.SkippedRowDTO{Line: line, Reason: reason})
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	if len(result.Rows) == 0 {
		return nil, domain.ErrCSVNoRows
	}
	return result, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(expectedHeader) {
		return false
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(col), expectedHeader[i]) {
			return false
		}
	}
	return true
}

func parseRecord(record []string) (Row, string) {
	if len(record) != len(expectedHeader) {
		return Row{}, fmt.Sprintf("expected %d columns, got %d", len(expectedHeader), len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	if record[0] == "" {
		return Row{}, "empty product_id"
	}
	date, err := parseDate(record[3])
	if err != nil {
		return Row{}, fmt.Sprintf("invalid date %q", record[3])
	}
	units, err := strconv.Atoi(record[4])
	if err != nil || units < 0 {
		return Row{}, fmt.Sprintf("invalid units_sold %q", record[4])
	}
	price, err := decimal.NewFromString(record[5])
	if err != nil || price.IsNegative() {
		return Row{}, fmt.Sprintf("invalid unit_price %q", record[5])
	}

	return Row{
		ProductID:   record[0],
		ProductName: record[1],
		Category:    record[2],
		Date:        date,
		UnitsSold:   units,
		UnitPrice:   price,
	}, ""
}

// parseDate acepta la fecha plana del contrato y, por tolerancia con
// exportadores viejos, RFC3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
