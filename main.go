package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/aydeggy-dot/InvoiceNG/database"
	"github.com/aydeggy-dot/InvoiceNG/internal/api"
	"github.com/aydeggy-dot/InvoiceNG/internal/cache"
	"github.com/aydeggy-dot/InvoiceNG/internal/config"
	"github.com/aydeggy-dot/InvoiceNG/internal/jobs"
	"github.com/aydeggy-dot/InvoiceNG/internal/routes"
	"github.com/aydeggy-dot/InvoiceNG/internal/services"
	"github.com/aydeggy-dot/InvoiceNG/internal/session"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found - checking environment variables")
	}

	cfg := config.Load()

	// Session persistence; empty path keeps the session in memory only
	var sessionStore *session.Store
	if cfg.SessionDBPath == "" {
		log.Println("⚠️  SESSION_DB_PATH empty - session will not survive restarts")
		sessionStore = session.NewMemoryStore()
	} else {
		log.Println("📦 Opening session database...")
		database.Connect(cfg.SessionDBPath)

		var err error
		sessionStore, err = session.NewStore(database.DB)
		if err != nil {
			log.Fatal("Failed to initialize session store:", err)
		}
	}

	if sessionStore.IsAuthenticated() {
		log.Println("✅ Session restored - operator already signed in")
	}

	// Shared query cache
	cacheStore := cache.New(cfg.StaleTime)

	// Remote API client
	apiClient := api.NewClient(cfg.APIBaseURL, sessionStore)
	apiClient.OnAuthLost(func() {
		log.Println("⚠️  Session expired - cleared credentials and cache")
		cacheStore.Clear()
	})

	shareService := services.NewShareService(cfg.PayBaseURL)

	// Background inbox refresh
	poller := jobs.NewConversationPoller(apiClient, cacheStore, sessionStore, cfg.PollInterval)
	poller.Start()

	log.Println("✅ All services initialized")

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "InvoiceNG Admin v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, api.ErrUnauthenticated) {
				return c.Redirect("/login", fiber.StatusFound)
			}

			var apiErr *api.Error
			if errors.As(err, &apiErr) {
				body := fiber.Map{
					"success": false,
					"message": apiErr.Message,
				}
				if len(apiErr.Fields) > 0 {
					body["errors"] = apiErr.Fields
				}
				return c.Status(apiErr.Status).JSON(body)
			}

			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Setup routes
	routes.SetupRoutes(app, apiClient, cacheStore, sessionStore, shareService)

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		log.Println("⏹️  Stopping conversation poller...")
		poller.Stop()
		log.Println("⏹️  Shutting down server...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Println("========================================")
	log.Printf("🚀 InvoiceNG Admin starting on port %s", cfg.Port)
	log.Printf("🌐 Remote API: %s", cfg.APIBaseURL)
	log.Printf("📊 Session storage: %s", storageLabel(cfg.SessionDBPath))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + cfg.Port))
}

func storageLabel(path string) string {
	if path == "" {
		return "In-Memory"
	}
	return "SQLite (" + path + ")"
}
