package usecase

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
	"github.com/tu-usuario/tracksmart-api/internal/infrastructure/memory"
)

func TestProduct_Create_DerivaSaludYDefaults(t *testing.T) {
	store := memory.NewStore()
	uc := NewProductUseCase(store)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Laptop", Price: decimal.NewFromInt(900), Stock: 7,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Critical", created.StockHealth)
	assert.Equal(t, "Medium", created.DemandLevel, "sin nivel sembrado se asume Medium")

	_, err = uc.Create(dto.CreateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_ImportCSV_CreaDesconocidosConIDExterno(t *testing.T) {
	store := memory.NewStore()
	uc := NewProductUseCase(store)

	_, err := uc.Create(dto.CreateProductRequest{Name: "Laptop", Price: decimal.NewFromInt(900), Stock: 20})
	require.NoError(t, err)

	csv := "product_id,product_name,category,date,units_sold,unit_price\n" +
		"pos-77,Espresso Beans,Grocery,2025-03-10,3,12.50\n" +
		"pos-77,Espresso Beans,Grocery,2025-03-11,5,12.50\n"

	result, err := uc.ImportCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, result.ImportedTransactions)
	assert.Equal(t, 1, result.CreatedProducts, "dos filas del mismo id externo crean un solo producto")

	imported, err := store.GetProduct("pos-77")
	require.NoError(t, err, "el producto importado conserva el ID externo")
	assert.Equal(t, "Espresso Beans", imported.Name)

	// Reimportar el mismo archivo no duplica el producto.
	result, err = uc.ImportCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 0, result.CreatedProducts)
	assert.Len(t, store.ListTransactions(), 4)
}

func TestProduct_ImportInvoice(t *testing.T) {
	store := memory.NewStore()
	uc := NewProductUseCase(store)

	_, err := uc.Create(dto.CreateProductRequest{Name: "Laptop", Price: decimal.NewFromInt(900), Stock: 20})
	require.NoError(t, err)

	result, err := uc.ImportInvoice(dto.InvoiceExtractionDTO{
		Items: []dto.InvoiceItemDTO{
			{ProductName: "laptop", Quantity: 2, UnitPrice: decimal.NewFromInt(850)}, // ya existe
			{ProductName: "USB Hub", Quantity: 10, UnitPrice: decimal.NewFromInt(8)},
			{ProductName: "", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.CreatedProducts)
	require.Len(t, result.SkippedRows, 2)
	assert.Contains(t, result.SkippedRows[0].Reason, "already exists")

	list := uc.List()
	assert.Equal(t, 2, list.Total)

	_, err = uc.ImportInvoice(dto.InvoiceExtractionDTO{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_Delete(t *testing.T) {
	store := memory.NewStore()
	uc := NewProductUseCase(store)

	created, err := uc.Create(dto.CreateProductRequest{Name: "Laptop", Price: decimal.NewFromInt(900), Stock: 20})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}
