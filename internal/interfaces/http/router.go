// Package http wires Fiber handlers to the application use cases.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/assistant"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/auth"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/deadstock"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/insights"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/usecase"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	InventoryUC *usecase.InventoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	StaffUC     *usecase.StaffUseCase
	PaymentUC   *usecase.PaymentUseCase
	DashboardUC *insights.DashboardUseCase
	DeadStockUC *deadstock.UseCase
	AssistantUC *assistant.UseCase
	UserRepo    repository.UserRepository
	JWTSecret   string
	AuthLimiter *RateLimiter
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public, rate limited)
	authGroup := api.Group("/auth")
	if deps.AuthLimiter != nil {
		authGroup.Use(deps.AuthLimiter.Handler())
	}
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Protected routes (Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventory
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Post("/", inventoryHandler.Add)
	inventory.Get("/", inventoryHandler.List)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", inventoryHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Add)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Staff
	staff := protected.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Post("/", staffHandler.Add)
	staff.Get("/", staffHandler.List)
	staff.Put("/:id", staffHandler.Update)
	staff.Delete("/:id", staffHandler.Delete)

	// Payments
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Add)
	payments.Get("/", paymentHandler.List)
	payments.Put("/:id/paid", paymentHandler.MarkPaid)
	payments.Put("/:id/reschedule", paymentHandler.Reschedule)
	payments.Delete("/:id", paymentHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)

	// Dead-stock workbench
	deadStock := protected.Group("/dead-stock")
	deadStockHandler := NewDeadStockHandler(deps.DeadStockUC, deps.UserRepo)
	deadStock.Get("/", deadStockHandler.List)
	deadStock.Get("/report", deadStockHandler.Report)
	deadStock.Put("/:id/discount", deadStockHandler.ApplyDiscount)
	deadStock.Put("/:id/bundle", deadStockHandler.Bundle)
	deadStock.Delete("/:id", deadStockHandler.Dispose)

	// Assistant
	assistantGroup := protected.Group("/assistant")
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	assistantGroup.Get("/prompts", assistantHandler.Prompts)
	assistantGroup.Post("/chat", assistantHandler.Chat)
}
