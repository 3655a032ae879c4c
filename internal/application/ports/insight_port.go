package ports

import (
	"context"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
)

// InsightService define el puerto de salida hacia los servicios de
// inteligencia artificial. Cualquier adaptador (Gemini, mock) debe implementar
// esta interfaz. Siguiendo el principio de inversión de dependencias (DIP), la
// capa de aplicación solo conoce este contrato, no la implementación concreta.
type InsightService interface {
	// GenerateInsights analiza el inventario y el historial de ventas y
	// produce recomendaciones de negocio en el idioma pedido. El contexto
	// debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateInsights(
		ctx context.Context,
		products []entity.Product,
		transactions []entity.Transaction,
		language string,
	) ([]dto.InsightDTO, error)

	// Chat responde una pregunta del dueño sobre su inventario usando el
	// estado actual como contexto.
	Chat(
		ctx context.Context,
		message string,
		language string,
		products []entity.Product,
	) (string, error)

	// ExtractInvoice extrae los renglones de una factura fotografiada.
	ExtractInvoice(
		ctx context.Context,
		image []byte,
		mimeType string,
	) (*dto.InvoiceExtractionDTO, error)
}
