package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"valencia-events/app/config"
	"valencia-events/app/database"
	"valencia-events/app/routes/admin"
	"valencia-events/app/routes/events"
	"valencia-events/app/routes/summaries"
	"valencia-events/app/services"
)

// jsonErrorHandler keeps stray fiber errors in the same JSON shape the
// handlers use.
func jsonErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	cfg := config.Load()

	// Connect to the document store
	store, err := database.Connect(context.Background(), cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to mongo:", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	// Reset events and summaries to the canonical fixture
	if err := store.Seed(context.Background()); err != nil {
		log.Fatal("Failed to seed store:", err)
	}
	log.Println("Seed data initialized")

	// Generation pipeline over the store and the OpenAI chat client
	generator := services.NewGenerator(store, services.NewOpenAIChat())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: jsonErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup events routes
	events.SetupEventsRoutes(app, store)

	// Setup summaries routes
	summaries.SetupSummariesRoutes(app, store)

	// Setup admin routes
	admin.SetupAdminRoutes(app, store, generator)

	// Liveness probe
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Start server in a goroutine so shutdown signals can be handled
	go func() {
		log.Printf("Valencia events API listening on %s", cfg.ListenAddr)
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatal("Server error:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
