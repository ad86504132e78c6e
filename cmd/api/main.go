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
	"github.com/soham-0510/vyapar-sathi-final/internal/application/assistant"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/auth"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/deadstock"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/insights"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/ports"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/usecase"
	infraai "github.com/soham-0510/vyapar-sathi-final/internal/infrastructure/ai"
	"github.com/soham-0510/vyapar-sathi-final/internal/infrastructure/memory"
	infrapdf "github.com/soham-0510/vyapar-sathi-final/internal/infrastructure/pdf"
	"github.com/soham-0510/vyapar-sathi-final/internal/infrastructure/postgres"
	"github.com/soham-0510/vyapar-sathi-final/internal/infrastructure/redisstore"
	httpRouter "github.com/soham-0510/vyapar-sathi-final/internal/interfaces/http"
	"github.com/soham-0510/vyapar-sathi-final/pkg/config"
	"github.com/soham-0510/vyapar-sathi-final/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	insightsRepo := postgres.NewInsightsRepository(pool)

	// Refresh tokens live in Redis when configured, in process memory otherwise.
	var tokenStore auth.TokenStore
	if cfg.Redis.Addr != "" {
		redisTokens, err := redisstore.NewTokenStore(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("Redis connection")
		}
		defer redisTokens.Close()
		tokenStore = redisTokens
		log.Info().Str("addr", cfg.Redis.Addr).Msg("refresh tokens: redis")
	} else {
		tokenStore = memory.NewTokenStore()
		log.Warn().Msg("refresh tokens: in-memory store (REDIS_ADDR not set)")
	}

	authUC := auth.NewUseCase(userRepo, tokenStore, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		RefreshTTL: time.Duration(cfg.JWT.RefreshExpiration) * time.Hour,
		Issuer:     cfg.JWT.Issuer,
	})
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	staffUC := usecase.NewStaffUseCase(staffRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo)
	dashboardUC := insights.NewDashboardUseCase(insightsRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	deadStockUC := deadstock.NewUseCase(insightsRepo, inventoryRepo, pdfGenerator)

	// The assistant answers from the daily summary when no API key is configured.
	var llm ports.AssistantService
	if cfg.AI.AnthropicAPIKey != "" {
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	} else {
		log.Warn().Msg("assistant: ANTHROPIC_API_KEY not set, summary replies only")
	}
	assistantUC := assistant.NewUseCase(llm, dashboardUC)

	authLimiter := httpRouter.NewRateLimiter(1, 5)
	go authLimiter.StartCleanupLoop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		SupplierUC:  supplierUC,
		StaffUC:     staffUC,
		PaymentUC:   paymentUC,
		DashboardUC: dashboardUC,
		DeadStockUC: deadStockUC,
		AssistantUC: assistantUC,
		UserRepo:    userRepo,
		JWTSecret:   cfg.JWT.Secret,
		AuthLimiter: authLimiter,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
