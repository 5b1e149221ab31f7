package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aydeggy-dot/InvoiceNG/internal/api"
	"github.com/aydeggy-dot/InvoiceNG/internal/cache"
	"github.com/aydeggy-dot/InvoiceNG/internal/handlers"
	"github.com/aydeggy-dot/InvoiceNG/internal/middleware"
	"github.com/aydeggy-dot/InvoiceNG/internal/services"
	"github.com/aydeggy-dot/InvoiceNG/internal/session"
)

// SetupRoutes configures all routes
func SetupRoutes(app *fiber.App, apiClient *api.Client, cacheStore *cache.Store, sessionStore *session.Store, shareService *services.ShareService) {

	authHandler := handlers.NewAuthHandler(apiClient, cacheStore, sessionStore)
	dashboardHandler := handlers.NewDashboardHandler(apiClient, cacheStore, sessionStore)
	customerHandler := handlers.NewCustomerHandler(apiClient, cacheStore)
	invoiceHandler := handlers.NewInvoiceHandler(apiClient, cacheStore, shareService)
	productHandler := handlers.NewProductHandler(apiClient, cacheStore)
	orderHandler := handlers.NewOrderHandler(apiClient, cacheStore)
	conversationHandler := handlers.NewConversationHandler(apiClient, cacheStore)
	analyticsHandler := handlers.NewAnalyticsHandler(apiClient, cacheStore)
	settingsHandler := handlers.NewSettingsHandler(apiClient, cacheStore, sessionStore)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":        "healthy",
			"authenticated": sessionStore.IsAuthenticated(),
		})
	})

	guestOnly := middleware.GuestOnly(sessionStore)
	pendingOTP := middleware.RequirePendingOTP(sessionStore)
	requireAuth := middleware.RequireAuth(sessionStore)

	// ========== GUEST ROUTES ==========
	app.Get("/login", guestOnly, authHandler.LoginPage)
	app.Post("/auth/request-otp", guestOnly, authHandler.RequestOTP)
	app.Get("/verify-otp", guestOnly, pendingOTP, authHandler.VerifyPage)
	app.Post("/auth/verify-otp", guestOnly, pendingOTP, authHandler.VerifyOTP)

	// ========== AUTHENTICATED ROUTES ==========
	app.Post("/auth/logout", requireAuth, authHandler.Logout)

	app.Get("/", requireAuth, dashboardHandler.Home)

	customers := app.Group("/customers", requireAuth)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.Get)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	invoices := app.Group("/invoices", requireAuth)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Get("/:id/share", invoiceHandler.Share)
	invoices.Post("/:id/send", invoiceHandler.Send)
	invoices.Post("/:id/cancel", invoiceHandler.Cancel)
	invoices.Post("/:id/mark-paid", invoiceHandler.MarkPaid)

	products := app.Group("/products", requireAuth)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/search", productHandler.Search)
	products.Get("/categories", productHandler.Categories)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/images", productHandler.AddImage)
	products.Delete("/:id/images/:imageId", productHandler.DeleteImage)
	products.Post("/:id/inventory", productHandler.AdjustInventory)

	orders := app.Group("/orders", requireAuth)
	orders.Get("/", orderHandler.List)
	orders.Get("/by-number/:number", orderHandler.GetByNumber)
	orders.Get("/:id", orderHandler.Get)
	orders.Post("/:id/mark-paid", orderHandler.MarkPaid)
	orders.Post("/:id/ship", orderHandler.Ship)
	orders.Post("/:id/deliver", orderHandler.Deliver)
	orders.Post("/:id/cancel", orderHandler.Cancel)

	conversations := app.Group("/conversations", requireAuth)
	conversations.Get("/", conversationHandler.List)
	conversations.Get("/active", conversationHandler.Active)
	conversations.Get("/handoff", conversationHandler.Handoff)
	conversations.Get("/:id", conversationHandler.Get)
	conversations.Get("/:id/messages", conversationHandler.Messages)
	conversations.Post("/:id/messages", conversationHandler.SendMessage)
	conversations.Post("/:id/handoff", conversationHandler.RequestHandoff)
	conversations.Post("/:id/handoff/resolve", conversationHandler.ResolveHandoff)
	conversations.Post("/:id/close", conversationHandler.Close)

	analytics := app.Group("/analytics", requireAuth)
	analytics.Get("/", analyticsHandler.Get)
	analytics.Get("/summary", analyticsHandler.Summary)

	settings := app.Group("/settings", requireAuth)
	settings.Get("/", settingsHandler.Profile)
	settings.Put("/", settingsHandler.Update)
}
