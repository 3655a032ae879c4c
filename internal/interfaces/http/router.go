package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tracksmart-api/internal/application/auth"
	"github.com/tu-usuario/tracksmart-api/internal/application/usecase"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	PricingUC      *usecase.PricingUseCase
	NotificationUC *usecase.NotificationUseCase
	AnalyticsUC    *usecase.AnalyticsUseCase
	AIUC           *usecase.AIUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token del dueño)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleOwner))

	protected.Get("/auth/me", authHandler.Me)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Post("/import", productHandler.ImportCSV)
	products.Post("/import-invoice", productHandler.ImportInvoice)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", productHandler.Delete)

	// Pricing (protegido)
	pricingHandler := NewPricingHandler(deps.PricingUC)
	products.Post("/:id/price/quote", pricingHandler.Quote)
	products.Post("/:id/price/apply", pricingHandler.Apply)
	products.Put("/:id/price", pricingHandler.Manual)

	// Notifications y alertas (protegido)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications := protected.Group("/notifications")
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	alerts := protected.Group("/alerts")
	alerts.Get("/", notificationHandler.AlertFeeds)
	alerts.Get("/export", notificationHandler.Export)

	// Analytics (protegido)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	protected.Get("/analytics/revenue", analyticsHandler.RevenueSeries)
	protected.Get("/dashboard/summary", analyticsHandler.DashboardSummary)

	// AI (protegido)
	ai := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Get("/insights", aiHandler.Insights)
	ai.Post("/chat", aiHandler.Chat)
	ai.Post("/extract-invoice", aiHandler.ExtractInvoice)
}
