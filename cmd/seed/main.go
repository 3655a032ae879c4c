// seed genera un CSV de historial de ventas de ejemplo con el formato que
// espera POST /api/products/import.
//
// Uso: go run ./cmd/seed [ruta/salida.csv]
// Por defecto escribe sample_sales.csv en el directorio actual.
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

type demoProduct struct {
	id       string
	name     string
	category string
	price    float64
	// ventas promedio por día, controla qué tan "caliente" sale el producto
	dailyRate float64
}

var catalog = []demoProduct{
	{"prod-001", "Basmati Rice 5kg", "Groceries", 650, 2.5},
	{"prod-002", "Soybean Oil 1L", "Groceries", 190, 3.0},
	{"prod-003", "Instant Noodles Pack", "Groceries", 25, 6.0},
	{"prod-004", "Laundry Detergent 1kg", "Household", 140, 1.2},
	{"prod-005", "LED Bulb 9W", "Electronics", 120, 0.8},
	{"prod-006", "Phone Charger USB-C", "Electronics", 350, 0.5},
	{"prod-007", "Green Tea 100g", "Beverages", 220, 0.3},
	{"prod-008", "Notebook A5", "Stationery", 60, 0.2},
}

func main() {
	outPath := "sample_sales.csv"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	// Semilla fija para que el demo sea reproducible.
	rng := rand.New(rand.NewSource(42))

	w := csv.NewWriter(out)
	if err := w.Write([]string{"product_id", "product_name", "category", "date", "units_sold", "unit_price"}); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir cabecera: %v\n", err)
		os.Exit(1)
	}

	rows := 0
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for daysAgo := 90; daysAgo >= 0; daysAgo-- {
		date := today.AddDate(0, 0, -daysAgo).Format("2006-01-02")
		for _, p := range catalog {
			// Poisson aproximado: tiradas de moneda contra la tasa diaria.
			units := 0
			for i := 0.0; i < p.dailyRate; i++ {
				if rng.Float64() < p.dailyRate-i || p.dailyRate-i >= 1 {
					units++
				}
			}
			if units == 0 {
				continue
			}
			record := []string{
				p.id,
				p.name,
				p.category,
				date,
				strconv.Itoa(units),
				strconv.FormatFloat(p.price, 'f', 2, 64),
			}
			if err := w.Write(record); err != nil {
				fmt.Fprintf(os.Stderr, "Escribir fila: %v\n", err)
				os.Exit(1)
			}
			rows++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "Cerrar CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d productos, %d filas de ventas\n", outPath, len(catalog), rows)
}
