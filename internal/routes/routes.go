package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gorkemserezli/oxiva-sub001/internal/config"
	"github.com/gorkemserezli/oxiva-sub001/internal/handlers"
	"github.com/gorkemserezli/oxiva-sub001/internal/middleware"
	"github.com/gorkemserezli/oxiva-sub001/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	orderService := services.NewOrderService(db, cfg.OrderNumberPrefix, cfg.OrderNumberWidth)
	paytrService := services.NewPayTRService(cfg.PayTRMerchantID, cfg.PayTRMerchantKey, cfg.PayTRSalt, cfg.PayTRTestMode)

	authHandler := handlers.NewAuthHandler(db, cfg)
	geoHandler := handlers.NewGeoHandler()
	productHandler := handlers.NewProductHandler(db)
	checkoutHandler := handlers.NewCheckoutHandler(orderService, telegramService)
	orderHandler := handlers.NewOrderHandler(db, orderService)
	adminHandler := handlers.NewAdminHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)
	paymentHandler := handlers.NewPaymentHandler(orderService, paytrService, telegramService)

	api := app.Group("/api")

	// Auth
	api.Post("/auth/login", authHandler.Login)

	// Public storefront
	api.Get("/geo/cities", geoHandler.ListCities)
	api.Get("/geo/districts/:city", geoHandler.ListDistricts)
	api.Get("/products", productHandler.ListActive)
	api.Get("/products/:slug", productHandler.GetBySlug)
	api.Get("/settings", settingsHandler.GetPublic)
	api.Post("/checkout", checkoutHandler.CreateOrder)
	api.Get("/orders/:orderNumber", checkoutHandler.TrackOrder)

	// Payment gateway
	api.Post("/payment/init", paymentHandler.Init)
	api.Post("/payment/callback", paymentHandler.Callback)

	// Admin back-office
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.AdminOnly())

	admin.Get("/me", authHandler.Me)
	admin.Get("/dashboard", adminHandler.DashboardStats)
	admin.Get("/customers", adminHandler.ListCustomers)

	admin.Get("/products", productHandler.ListAll)
	admin.Post("/products", productHandler.Create)
	admin.Get("/products/:id", productHandler.Get)
	admin.Put("/products/:id", productHandler.Update)
	admin.Delete("/products/:id", productHandler.Delete)

	admin.Get("/orders", orderHandler.List)
	admin.Get("/orders/:id", orderHandler.Get)
	admin.Put("/orders/:id/status", orderHandler.UpdateStatus)
	admin.Post("/orders/:id/cancel", orderHandler.Cancel)
	admin.Get("/orders/:id/timeline", orderHandler.Timeline)

	admin.Get("/settings", settingsHandler.GetAll)
	admin.Put("/settings", settingsHandler.Update)

	admin.Post("/uploads", uploadHandler.Upload)
	admin.Delete("/uploads/:filename", uploadHandler.Delete)

	// Uploaded branding assets
	app.Static("/uploads", cfg.UploadDir)
}
