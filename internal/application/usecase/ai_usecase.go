package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/application/ports"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
	"github.com/tu-usuario/tracksmart-api/internal/domain/repository"
	"github.com/tu-usuario/tracksmart-api/internal/domain/signal"
	"github.com/tu-usuario/tracksmart-api/pkg/logger"
)

// llmTimeout tope por llamada al LLM para no bloquear goroutines del servidor.
const llmTimeout = 10 * time.Second

// Marketplaces sugeridos en los insights de abastecimiento.
const (
	darazURL  = "https://www.daraz.com.bd"
	bikroyURL = "https://bikroy.com"
)

// AIUseCase orquesta insights, chat y extracción de facturas. Cada operación
// intenta primero el LLM con timeout; si el proveedor falla (o no está
// configurado), insights y chat caen a un plan B determinista derivado del
// motor de señales para que el dashboard nunca quede en blanco.
type AIUseCase struct {
	llm   ports.InsightService
	store repository.EntityStore
	log   *logger.Logger
}

// NewAIUseCase construye el caso de uso. llm puede ser nil cuando no hay
// credenciales del proveedor.
func NewAIUseCase(llm ports.InsightService, store repository.EntityStore, log *logger.Logger) *AIUseCase {
	return &AIUseCase{llm: llm, store: store, log: log}
}

// Insights genera recomendaciones de negocio en el idioma pedido.
func (uc *AIUseCase) Insights(ctx context.Context, language string) (*dto.InsightListResponse, error) {
	products := uc.store.ListProducts()

	if uc.llm != nil {
		ctx, cancel := context.WithTimeout(ctx, llmTimeout)
		defer cancel()

		insights, err := uc.llm.GenerateInsights(ctx, products, uc.store.ListTransactions(), language)
		if err == nil {
			return &dto.InsightListResponse{Insights: insights, Source: "llm"}, nil
		}
		uc.log.Warn().Err(err).Msg("insights: el LLM falló, usando plan B determinista")
	}

	return &dto.InsightListResponse{Insights: uc.fallbackInsights(products), Source: "rules"}, nil
}

// Chat responde una pregunta del dueño sobre su inventario. Las preguntas de
// stock se contestan localmente con cifras exactas del catálogo; el resto de
// los temas va al LLM.
func (uc *AIUseCase) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, domain.ErrInvalidInput
	}
	products := uc.store.ListProducts()

	if isStockQuestion(req.Message) {
		return &dto.ChatResponse{Reply: heuristicReply(req.Message, products), Source: "rules"}, nil
	}

	if uc.llm != nil {
		ctx, cancel := context.WithTimeout(ctx, llmTimeout)
		defer cancel()

		reply, err := uc.llm.Chat(ctx, req.Message, req.Language, products)
		if err == nil {
			return &dto.ChatResponse{Reply: reply, Source: "llm"}, nil
		}
		uc.log.Warn().Err(err).Msg("chat: el LLM falló, usando respuesta heurística")
	}

	return &dto.ChatResponse{Reply: heuristicReply(req.Message, products), Source: "rules"}, nil
}

// ExtractInvoice extrae los renglones de una factura fotografiada. No hay plan
// B posible: sin LLM configurado la operación no está disponible.
func (uc *AIUseCase) ExtractInvoice(ctx context.Context, image []byte, mimeType string) (*dto.InvoiceExtractionDTO, error) {
	if len(image) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if uc.llm == nil {
		return nil, fmt.Errorf("extracción de factura: %w", domain.ErrLLMUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	extraction, err := uc.llm.ExtractInvoice(ctx, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("extracción de factura: %w", err)
	}
	return extraction, nil
}

// fallbackInsights deriva recomendaciones del motor de señales cuando el LLM
// no está disponible. Siempre en inglés: es lo que habla la interfaz.
func (uc *AIUseCase) fallbackInsights(products []entity.Product) []dto.InsightDTO {
	insights := []dto.InsightDTO{}

	feeds := signal.DeriveAlertFeeds(products)
	if len(feeds.StockAlerts) > 0 {
		p := feeds.StockAlerts[0]
		insights = append(insights, dto.InsightDTO{
			Title:       fmt.Sprintf("Restock %s soon", p.Name),
			Description: fmt.Sprintf("Only %d units left. Ordering now avoids losing sales while a new batch arrives.", p.Stock),
			Type:        string(entity.InsightInventory),
			Action: &dto.ActionDTO{
				Kind:      string(entity.ActionOrder),
				Label:     "Order now",
				ProductID: p.ID,
			},
		})
	}

	for _, p := range products {
		if signal.ClassifyDemand(p) == entity.DemandHigh && p.Stock < signal.RestockAdvisoryThreshold {
			insights = append(insights, dto.InsightDTO{
				Title:       fmt.Sprintf("%s is selling fast", p.Name),
				Description: "High demand with low stock usually supports a small price increase. Check the pricing tool for a suggestion.",
				Type:        string(entity.InsightPricing),
				Action: &dto.ActionDTO{
					Kind:      string(entity.ActionViewSupplier),
					Label:     "View suppliers",
					ProductID: p.ID,
				},
			})
			break
		}
	}

	for _, p := range products {
		if signal.ClassifyDemand(p) == entity.DemandLow && p.Stock > signal.OverstockThreshold {
			insights = append(insights, dto.InsightDTO{
				Title:       fmt.Sprintf("Too much %s in stock", p.Name),
				Description: "Demand is low and inventory is piling up. A promotional price can free up shelf space and cash.",
				Type:        string(entity.InsightPricing),
				Action: &dto.ActionDTO{
					Kind:   string(entity.ActionNavigate),
					Label:  "List on Bikroy",
					URL:    bikroyURL,
					Target: "_blank",
				},
			})
			break
		}
	}

	insights = append(insights, dto.InsightDTO{
		Title:       "Source trending products",
		Description: "Browse what is trending on Daraz to spot items worth adding to your shop.",
		Type:        string(entity.InsightTrend),
		Action: &dto.ActionDTO{
			Kind:   string(entity.ActionNavigate),
			Label:  "Open Daraz",
			URL:    darazURL,
			Target: "_blank",
		},
	})
	return insights
}

// isStockQuestion detecta preguntas de niveles de stock, que se responden con
// el catálogo en mano y sin latencia.
func isStockQuestion(message string) bool {
	msg := strings.ToLower(message)
	return strings.Contains(msg, "stock") || strings.Contains(msg, "restock") || strings.Contains(msg, "inventory")
}

// heuristicReply arma una respuesta básica sin LLM a partir del estado del
// inventario.
func heuristicReply(message string, products []entity.Product) string {
	msg := strings.ToLower(message)

	switch {
	case isStockQuestion(msg):
		var low []string
		for _, p := range products {
			if signal.ClassifyStock(p) != signal.StockHealthy {
				low = append(low, fmt.Sprintf("%s (%d units)", p.Name, p.Stock))
			}
		}
		if len(low) == 0 {
			return "All products are at healthy stock levels right now."
		}
		return "These products are running low: " + strings.Join(low, ", ") + "."

	case strings.Contains(msg, "price") || strings.Contains(msg, "pricing"):
		return "Open a product in the pricing tool to get a recommendation based on its demand and stock level."

	case strings.Contains(msg, "best") || strings.Contains(msg, "top") || strings.Contains(msg, "selling"):
		top := signal.TopProducts(products, 1)
		if len(top) == 0 {
			return "There are no products in your inventory yet."
		}
		return fmt.Sprintf("Your best seller is %s, purchased %d times.", top[0].Name, top[0].PurchaseFrequency)
	}
	return "I can help with stock levels, pricing and top sellers. Try asking about your stock."
}
