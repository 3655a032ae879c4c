package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/application/ports"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que AnthropicService implementa el puerto.
var _ ports.InsightService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
)

// AnthropicService adaptador alternativo que implementa InsightService usando
// la API REST de Anthropic (Claude). Se selecciona con AI_PROVIDER=anthropic.
// A diferencia de Gemini no hay modo JSON forzado, así que las respuestas
// estructuradas pasan por extractJSON.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador. model suele ser
// "claude-3-5-haiku-20241022".
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string           `json:"role"`
	Content []anthropicBlock `json:"content"`
}

type anthropicBlock struct {
	Type   string           `json:"type"`
	Text   string           `json:"text,omitempty"`
	Source *anthropicSource `json:"source,omitempty"`
}

type anthropicSource struct {
	Type      string `json:"type"` // "base64"
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo
// envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implementación del puerto ─────────────────────────────────────────────────

// GenerateInsights pide los insights y parsea el JSON de la respuesta.
func (s *AnthropicService) GenerateInsights(
	ctx context.Context,
	products []entity.Product,
	transactions []entity.Transaction,
	language string,
) ([]dto.InsightDTO, error) {
	userText := fmt.Sprintf("Language: %s\n\n%s\n\nRecent sales rows: %d",
		languageName(language), inventorySnapshot(products), len(transactions))

	raw, err := s.complete(ctx, insightsPrompt, []anthropicBlock{{Type: "text", Text: userText}})
	if err != nil {
		return nil, err
	}

	cleanJSON := extractJSON(raw)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", raw)
	}
	var payload insightsPayload
	if err := json.Unmarshal([]byte(cleanJSON), &payload); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de insights: %w (JSON extraído: %s)", err, cleanJSON)
	}
	return payload.toDTOs(), nil
}

// Chat responde en texto plano.
func (s *AnthropicService) Chat(
	ctx context.Context,
	message string,
	language string,
	products []entity.Product,
) (string, error) {
	userText := fmt.Sprintf("Language: %s\n\n%s\n\nQuestion: %s",
		languageName(language), inventorySnapshot(products), message)

	raw, err := s.complete(ctx, chatPrompt, []anthropicBlock{{Type: "text", Text: userText}})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// ExtractInvoice manda la foto como bloque image base64.
func (s *AnthropicService) ExtractInvoice(
	ctx context.Context,
	image []byte,
	mimeType string,
) (*dto.InvoiceExtractionDTO, error) {
	blocks := []anthropicBlock{
		{Type: "image", Source: &anthropicSource{
			Type:      "base64",
			MediaType: mimeType,
			Data:      base64.StdEncoding.EncodeToString(image),
		}},
		{Type: "text", Text: invoicePrompt},
	}

	raw, err := s.complete(ctx, "", blocks)
	if err != nil {
		return nil, err
	}

	cleanJSON := extractJSON(raw)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", raw)
	}
	var payload invoicePayload
	if err := json.Unmarshal([]byte(cleanJSON), &payload); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de factura: %w (JSON extraído: %s)", err, cleanJSON)
	}
	return payload.toDTO(), nil
}

// complete hace la llamada HTTP y devuelve el texto del primer bloque.
func (s *AnthropicService) complete(ctx context.Context, system string, blocks []anthropicBlock) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    system,
		Messages: []anthropicMessage{
			{Role: "user", Content: blocks},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

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
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d", resp.StatusCode)
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: el modelo devolvió respuesta vacía")
	}
	return anthResp.Content[0].Text, nil
}

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
// Estrategia en dos pasos:
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Usar regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
