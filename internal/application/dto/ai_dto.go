package dto

import "github.com/shopspring/decimal"

// ActionDTO la acción asociada a un insight. Kind discrimina el resto de los
// campos: "order" y "view_supplier" llevan ProductID, "navigate" lleva URL y
// Target.
type ActionDTO struct {
	Kind      string `json:"kind"`
	Label     string `json:"label"`
	ProductID string `json:"product_id,omitempty"`
	URL       string `json:"url,omitempty"`
	Target    string `json:"target,omitempty"`
}

// InsightDTO una recomendación de negocio para la vista de insights.
type InsightDTO struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Action      *ActionDTO `json:"action,omitempty"`
}

// InsightListResponse insights generados más su origen: "llm" cuando
// respondió el modelo, "rules" cuando se usó el plan B determinista.
type InsightListResponse struct {
	Insights []InsightDTO `json:"insights"`
	Source   string       `json:"source"`
}

// ChatRequest entrada del asistente conversacional.
type ChatRequest struct {
	Message  string `json:"message" validate:"required,min=1"`
	Language string `json:"language" validate:"omitempty,oneof=en bn"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}

// InvoiceItemDTO un renglón extraído de una factura fotografiada.
type InvoiceItemDTO struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// InvoiceExtractionDTO resultado del OCR de factura.
type InvoiceExtractionDTO struct {
	Merchant string           `json:"merchant,omitempty"`
	Date     string           `json:"date,omitempty"`
	Items    []InvoiceItemDTO `json:"items"`
}

// SkippedRowDTO una fila de importación descartada y el motivo.
type SkippedRowDTO struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportResultDTO resumen de una importación CSV o de factura.
type ImportResultDTO struct {
	ImportedTransactions int             `json:"imported_transactions"`
	CreatedProducts      int             `json:"created_products"`
	SkippedRows          []SkippedRowDTO `json:"skipped_rows,omitempty"`
}
