package usecase

import (
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/application/importer"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
	"github.com/tu-usuario/tracksmart-api/internal/domain/repository"
	"github.com/tu-usuario/tracksmart-api/internal/domain/signal"
)

// ProductUseCase casos de uso del catálogo: CRUD más las importaciones que lo
// alimentan (CSV de ventas y factura fotografiada).
type ProductUseCase struct {
	store repository.EntityStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.EntityStore) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// Create registra un producto nuevo con ID generado.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	demand := entity.DemandLevel(in.DemandLevel)
	if !demand.Valid() {
		demand = entity.DemandMedium
	}
	product, err := uc.store.AddProduct(entity.Product{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Category:          in.Category,
		Price:             in.Price,
		Stock:             in.Stock,
		DemandLevel:       demand,
		PurchaseFrequency: in.PurchaseFrequency,
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.store.GetProduct(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista el catálogo completo, más reciente primero.
func (uc *ProductUseCase) List() *dto.ProductListResponse {
	list := uc.store.ListProducts()
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

// Delete elimina un producto por ID. Su historial de ventas se conserva.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.store.RemoveProduct(id)
}

// ImportCSV importa un historial de ventas. Los product_id desconocidos crean
// productos nuevos conservando el ID externo, para que futuras importaciones
// del mismo exportador resuelvan al mismo producto.
func (uc *ProductUseCase) ImportCSV(r io.Reader) (*dto.ImportResultDTO, error) {
	parsed, err := importer.Parse(r)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool)
	for _, p := range uc.store.ListProducts() {
		known[p.ID] = true
	}

	var newProducts []entity.Product
	var transactions []entity.Transaction
	for _, row := range parsed.Rows {
		if !known[row.ProductID] {
			known[row.ProductID] = true
			newProducts = append(newProducts, entity.Product{
				ID:          row.ProductID,
				Name:        row.ProductName,
				Category:    row.Category,
				Price:       row.UnitPrice,
				DemandLevel: entity.DemandMedium,
			})
		}
		transactions = append(transactions, entity.Transaction{
			ID:        uuid.New().String(),
			ProductID: row.ProductID,
			Date:      row.Date,
			Quantity:  row.UnitsSold,
			Price:     row.UnitPrice,
		})
	}

	if err := uc.store.ImportBatch(newProducts, transactions); err != nil {
		return nil, err
	}
	return &dto.ImportResultDTO{
		ImportedTransactions: len(transactions),
		CreatedProducts:      len(newProducts),
		SkippedRows:          parsed.Skipped,
	}, nil
}

// ImportInvoice aplica una extracción de factura al inventario: los renglones
// desconocidos crean productos nuevos y los ya conocidos (por nombre) se
// reportan como omitidos.
func (uc *ProductUseCase) ImportInvoice(extraction dto.InvoiceExtractionDTO) (*dto.ImportResultDTO, error) {
	if len(extraction.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	byName := make(map[string]entity.Product)
	for _, p := range uc.store.ListProducts() {
		byName[strings.ToLower(p.Name)] = p
	}

	result := &dto.ImportResultDTO{}
	var newProducts []entity.Product
	for i, item := range extraction.Items {
		if item.ProductName == "" || item.Quantity <= 0 {
			result.SkippedRows = append(result.SkippedRows, dto.SkippedRowDTO{
				Line: i + 1, Reason: "missing product name or quantity",
			})
			continue
		}
		if _, ok := byName[strings.ToLower(item.ProductName)]; ok {
			// El producto ya existe: la factura es una compra de reposición.
			// El ajuste de stock queda a cargo del dueño desde el catálogo.
			result.SkippedRows = append(result.SkippedRows, dto.SkippedRowDTO{
				Line: i + 1, Reason: "product already exists",
			})
			continue
		}
		newProducts = append(newProducts, entity.Product{
			ID:          uuid.New().String(),
			Name:        item.ProductName,
			Price:       item.UnitPrice,
			Stock:       item.Quantity,
			DemandLevel: entity.DemandMedium,
		})
	}

	if len(newProducts) > 0 {
		if err := uc.store.ImportBatch(newProducts, nil); err != nil {
			return nil, err
		}
	}
	result.CreatedProducts = len(newProducts)
	return result, nil
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		Price:             p.Price,
		Stock:             p.Stock,
		StockHealth:       string(signal.ClassifyStock(p)),
		DemandLevel:       string(signal.ClassifyDemand(p)),
		PurchaseFrequency: p.PurchaseFrequency,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
