package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/tracksmart-api/internal/application/auth"
	"github.com/tu-usuario/tracksmart-api/internal/application/ports"
	"github.com/tu-usuario/tracksmart-api/internal/application/usecase"
	infraai "github.com/tu-usuario/tracksmart-api/internal/infrastructure/ai"
	"github.com/tu-usuario/tracksmart-api/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/tracksmart-api/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/tracksmart-api/internal/interfaces/http"
	"github.com/tu-usuario/tracksmart-api/pkg/config"
	"github.com/tu-usuario/tracksmart-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	store := memory.NewStore()
	userRepo := memory.NewUserRepository()

	// Proveedor de IA según configuración. Sin API key la interfaz queda nil y
	// los insights/chat caen al plan B determinista.
	var llm ports.InsightService
	switch {
	case cfg.AI.APIKey() == "":
		log.Warn().Str("provider", cfg.AI.Provider).Msg("sin API key de IA, usando solo el plan B determinista")
	case cfg.AI.Provider == "anthropic":
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	productUC := usecase.NewProductUseCase(store)
	pricingUC := usecase.NewPricingUseCase(store)
	notificationUC := usecase.NewNotificationUseCase(store, pdfGenerator)
	analyticsUC := usecase.NewAnalyticsUseCase(store)
	aiUC := usecase.NewAIUseCase(llm, store, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	if cfg.Admin.Password == "" {
		log.Warn().Msg("ADMIN_PASSWORD no configurado, no se siembra la cuenta del dueño")
	} else if err := authUC.SeedOwner(cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		log.Fatal().Err(err).Msg("sembrar la cuenta del dueño")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TrackSmart API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		PricingUC:      pricingUC,
		NotificationUC: notificationUC,
		AnalyticsUC:    analyticsUC,
		AIUC:           aiUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
