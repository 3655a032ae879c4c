package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
	"github.com/tu-usuario/tracksmart-api/internal/infrastructure/memory"
	"github.com/tu-usuario/tracksmart-api/pkg/logger"
)

// mockLLM implementa ports.InsightService con respuestas programables.
type mockLLM struct {
	insights []dto.InsightDTO
	reply    string
	err      error
	calls    int
}

func (m *mockLLM) GenerateInsights(_ context.Context, _ []entity.Product, _ []entity.Transaction, _ string) ([]dto.InsightDTO, error) {
	m.calls++
	return m.insights, m.err
}

func (m *mockLLM) Chat(_ context.Context, _ string, _ string, _ []entity.Product) (string, error) {
	m.calls++
	return m.reply, m.err
}

func (m *mockLLM) ExtractInvoice(_ context.Context, _ []byte, _ string) (*dto.InvoiceExtractionDTO, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &dto.InvoiceExtractionDTO{Items: []dto.InvoiceItemDTO{{ProductName: "Laptop", Quantity: 2}}}, nil
}

func aiFixtureStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	products := NewProductUseCase(store)

	_, err := products.Create(dto.CreateProductRequest{
		Name: "Smartwatch Pro", Price: decimal.NewFromInt(100), Stock: 4,
		DemandLevel: "High", PurchaseFrequency: 88,
	})
	require.NoError(t, err)
	_, err = products.Create(dto.CreateProductRequest{
		Name: "Wool Scarf", Price: decimal.NewFromInt(20), Stock: 60,
		DemandLevel: "Low", PurchaseFrequency: 3,
	})
	require.NoError(t, err)
	return store
}

func TestAI_Insights_PrefiereElLLM(t *testing.T) {
	llm := &mockLLM{insights: []dto.InsightDTO{{Title: "From the model"}}}
	uc := NewAIUseCase(llm, aiFixtureStore(t), logger.Nop())

	got, err := uc.Insights(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, "llm", got.Source)
	require.Len(t, got.Insights, 1)
	assert.Equal(t, "From the model", got.Insights[0].Title)
	assert.Equal(t, 1, llm.calls)
}

func TestAI_Insights_FallaElLLM_CaeAReglas(t *testing.T) {
	llm := &mockLLM{err: errors.New("quota exceeded")}
	uc := NewAIUseCase(llm, aiFixtureStore(t), logger.Nop())

	got, err := uc.Insights(context.Background(), "en")
	require.NoError(t, err, "la falla del proveedor no debe llegar al caller")
	assert.Equal(t, "rules", got.Source)
	require.NotEmpty(t, got.Insights)

	// El producto con stock crítico encabeza el plan B.
	assert.Contains(t, got.Insights[0].Title, "Smartwatch Pro")
	require.NotNil(t, got.Insights[0].Action)
	assert.Equal(t, "order", got.Insights[0].Action.Kind)
}

func TestAI_Insights_SinLLMConfigurado(t *testing.T) {
	uc := NewAIUseCase(nil, aiFixtureStore(t), logger.Nop())

	got, err := uc.Insights(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, "rules", got.Source)

	var kinds []string
	for _, in := range got.Insights {
		if in.Action != nil {
			kinds = append(kinds, in.Action.Kind)
		}
	}
	assert.Contains(t, kinds, "navigate", "el plan B siempre sugiere explorar marketplaces")
}

func TestAI_Chat_FallbackPorTema(t *testing.T) {
	uc := NewAIUseCase(nil, aiFixtureStore(t), logger.Nop())

	got, err := uc.Chat(context.Background(), dto.ChatRequest{Message: "what should I restock?"})
	require.NoError(t, err)
	assert.Equal(t, "rules", got.Source)
	assert.Contains(t, got.Reply, "Smartwatch Pro")

	got, err = uc.Chat(context.Background(), dto.ChatRequest{Message: "what is my top seller?"})
	require.NoError(t, err)
	assert.Contains(t, got.Reply, "Smartwatch Pro")
	assert.Contains(t, got.Reply, "88")
}

func TestAI_Chat_PreguntaDeStockNoLlamaAlLLM(t *testing.T) {
	llm := &mockLLM{reply: "should not be used"}
	uc := NewAIUseCase(llm, aiFixtureStore(t), logger.Nop())

	got, err := uc.Chat(context.Background(), dto.ChatRequest{Message: "How is my stock doing?"})
	require.NoError(t, err)
	assert.Equal(t, "rules", got.Source)
	assert.Contains(t, got.Reply, "Smartwatch Pro", "debe responder con cifras del catálogo")
	assert.Equal(t, 0, llm.calls, "las preguntas de stock se responden localmente")
}

func TestAI_Chat_MensajeVacio(t *testing.T) {
	uc := NewAIUseCase(nil, aiFixtureStore(t), logger.Nop())

	_, err := uc.Chat(context.Background(), dto.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAI_ExtractInvoice(t *testing.T) {
	llm := &mockLLM{}
	uc := NewAIUseCase(llm, aiFixtureStore(t), logger.Nop())

	got, err := uc.ExtractInvoice(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Laptop", got.Items[0].ProductName)

	_, err = uc.ExtractInvoice(context.Background(), nil, "image/jpeg")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAI_ExtractInvoice_SinLLM(t *testing.T) {
	uc := NewAIUseCase(nil, aiFixtureStore(t), logger.Nop())

	_, err := uc.ExtractInvoice(context.Background(), []byte{0x01}, "image/png")
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}
