// Package ai contiene los adaptadores hacia proveedores de LLM. Todos
// implementan ports.InsightService sobre net/http crudo: la API REST de cada
// proveedor es lo bastante simple como para no cargar un SDK oficial.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/application/ports"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa el puerto.
var _ ports.InsightService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// insightsPrompt obliga salida JSON pura vía response_mime_type, así no
	// hay que limpiar bloques de markdown.
	insightsPrompt = `You are a business advisor for a small retail shop in Bangladesh.
Given the shop's inventory and sales history, return ONLY a JSON object (no extra text) with this exact structure:
{
  "insights": [
    {
      "title": "<short actionable headline>",
      "description": "<2-3 sentences explaining the recommendation>",
      "type": "<inventory | pricing | trend>",
      "action": {
        "kind": "<order | view_supplier | navigate>",
        "label": "<button label>",
        "product_id": "<product id, only for order/view_supplier>",
        "url": "<external url, only for navigate>",
        "target": "<_blank for external urls>"
      }
    }
  ]
}

Rules:
- Return between 2 and 4 insights, most urgent first.
- Ground every insight in the data provided; never invent products.
- Write in the language requested by the user.`

	chatPrompt = `You are TrackSmart, a friendly assistant for a small shop owner.
Answer questions about their inventory using ONLY the inventory snapshot provided.
Keep answers short (2-3 sentences), concrete and in the language requested.
If the data cannot answer the question, say so instead of guessing.`

	invoicePrompt = `You are an invoice digitization assistant.
Extract the line items from the invoice photo and return ONLY a JSON object (no extra text) with this exact structure:
{
  "merchant": "<supplier name or empty string>",
  "date": "<invoice date as YYYY-MM-DD or empty string>",
  "items": [
    {"product_name": "<name>", "quantity": <integer>, "unit_price": <number>}
  ]
}
Skip totals, taxes and rows you cannot read with confidence.`
)

// GeminiService adaptador que implementa InsightService llamando a la API
// REST de Google Gemini.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// GenerateInsights envía el snapshot del inventario a Gemini y mapea el JSON
// devuelto a DTOs, descartando insights malformados.
func (s *GeminiService) GenerateInsights(
	ctx context.Context,
	products []entity.Product,
	transactions []entity.Transaction,
	language string,
) ([]dto.InsightDTO, error) {
	userText := fmt.Sprintf("Language: %s\n\n%s\n\nRecent sales rows: %d",
		languageName(language), inventorySnapshot(products), len(transactions))

	raw, err := s.generate(ctx, insightsPrompt, []geminiPart{{Text: userText}}, true)
	if err != nil {
		return nil, err
	}

	var payload insightsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, raw)
	}
	return payload.toDTOs(), nil
}

// Chat responde en texto plano usando el snapshot como único contexto.
func (s *GeminiService) Chat(
	ctx context.Context,
	message string,
	language string,
	products []entity.Product,
) (string, error) {
	userText := fmt.Sprintf("Language: %s\n\n%s\n\nQuestion: %s",
		languageName(language), inventorySnapshot(products), message)

	raw, err := s.generate(ctx, chatPrompt, []geminiPart{{Text: userText}}, false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// ExtractInvoice manda la foto como inline_data y parsea los renglones.
func (s *GeminiService) ExtractInvoice(
	ctx context.Context,
	image []byte,
	mimeType string,
) (*dto.InvoiceExtractionDTO, error) {
	parts := []geminiPart{
		{Text: invoicePrompt},
		{InlineData: &geminiInlineData{
			MIMEType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	}

	raw, err := s.generate(ctx, "", parts, true)
	if err != nil {
		return nil, err
	}

	var payload invoicePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, raw)
	}
	return payload.toDTO(), nil
}

// generate hace la llamada HTTP y devuelve el texto del primer candidato.
func (s *GeminiService) generate(ctx context.Context, system string, parts []geminiPart, jsonOut bool) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: genConfig{
			Temperature:     0.2, // baja temperatura para respuestas más deterministas
			MaxOutputTokens: 1024,
		},
	}
	if system != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}
	if jsonOut {
		payload.GenerationConfig.ResponseMIMEType = "application/json"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}

// ── Payloads que esperamos del modelo, compartidos entre adaptadores ──────────

type insightsPayload struct {
	Insights []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Action      *struct {
			Kind      string `json:"kind"`
			Label     string `json:"label"`
			ProductID string `json:"product_id"`
			URL       string `json:"url"`
			Target    string `json:"target"`
		} `json:"action"`
	} `json:"insights"`
}

func (p insightsPayload) toDTOs() []dto.InsightDTO {
	out := make([]dto.InsightDTO, 0, len(p.Insights))
	for _, in := range p.Insights {
		if in.Title == "" || !validInsightType(in.Type) {
			continue
		}
		insight := dto.InsightDTO{Title: in.Title, Description: in.Description, Type: in.Type}
		if in.Action != nil && validActionKind(in.Action.Kind) {
			insight.Action = &dto.ActionDTO{
				Kind:      in.Action.Kind,
				Label:     in.Action.Label,
				ProductID: in.Action.ProductID,
				URL:       in.Action.URL,
				Target:    in.Action.Target,
			}
		}
		out = append(out, insight)
	}
	return out
}

type invoicePayload struct {
	Merchant string `json:"merchant"`
	Date     string `json:"date"`
	Items    []struct {
		ProductName string  `json:"product_name"`
		Quantity    int     `json:"quantity"`
		UnitPrice   float64 `json:"unit_price"`
	} `json:"items"`
}

func (p invoicePayload) toDTO() *dto.InvoiceExtractionDTO {
	out := &dto.InvoiceExtractionDTO{Merchant: p.Merchant, Date: p.Date, Items: []dto.InvoiceItemDTO{}}
	for _, item := range p.Items {
		if item.ProductName == "" || item.Quantity <= 0 {
			continue
		}
		out.Items = append(out.Items, dto.InvoiceItemDTO{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   decimal.NewFromFloat(item.UnitPrice),
		})
	}
	return out
}

func validInsightType(t string) bool {
	switch entity.InsightType(t) {
	case entity.InsightInventory, entity.InsightPricing, entity.InsightTrend:
		return true
	}
	return false
}

func validActionKind(k string) bool {
	switch entity.ActionKind(k) {
	case entity.ActionOrder, entity.ActionViewSupplier, entity.ActionNavigate:
		return true
	}
	return false
}

// inventorySnapshot serializa el inventario en texto plano compacto para el
// prompt. Una línea por producto.
func inventorySnapshot(products []entity.Product) string {
	var b strings.Builder
	b.WriteString("Inventory snapshot:\n")
	if len(products) == 0 {
		b.WriteString("  (empty)\n")
	}
	for _, p := range products {
		fmt.Fprintf(&b, "  id=%s name=%q category=%q stock=%d demand=%s price=%s sold=%d times\n",
			p.ID, p.Name, p.Category, p.Stock, p.DemandLevel, p.Price.String(), p.PurchaseFrequency)
	}
	return b.String()
}

func languageName(code string) string {
	if code == "bn" {
		return "Bangla"
	}
	return "English"
}
