package entity

// InsightType categoría de un insight generado (por el LLM o por las reglas
// locales de respaldo).
type InsightType string

const (
	InsightInventory InsightType = "inventory"
	InsightPricing   InsightType = "pricing"
	InsightTrend     InsightType = "trend"
)

// Insight es una recomendación narrativa accionable para el dueño de la
// tienda. ActionURL apunta a un marketplace externo o a una vista interna.
type Insight struct {
	Title       string
	Description string
	Type        InsightType
	ActionLabel string
	ActionURL   string
}

// ActionKind conjunto cerrado de acciones sugeridas en respuestas del chat y
// en alertas. Cada variante lleva solo los campos que su tipo necesita.
type ActionKind string

const (
	ActionOrder        ActionKind = "order"         // reordenar stock de un producto
	ActionViewSupplier ActionKind = "view_supplier" // abrir búsqueda de proveedores
	ActionNavigate     ActionKind = "navigate"      // navegar a una vista interna
)

// Action es la unión etiquetada de acciones sugeridas.
type Action struct {
	Kind      ActionKind
	Label     string
	ProductID string // order / view_supplier
	URL       string // order / view_supplier: destino externo
	Target    string // navigate: vista interna destino
}
