package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tienda/internal/config"
	"tienda/internal/handlers"
	"tienda/internal/queries"
	"tienda/internal/repositories"
	"tienda/internal/services"
	"tienda/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Connect to MongoDB ---
	// The connection is established once and shared by every operation.
	// A failure here is fatal: no use case may run without the store.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("%s: %v", cfg.Messages.ConnectionError, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("%s: %v", cfg.Messages.ConnectionError, err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	collection := client.Database(cfg.Database).Collection(cfg.Collection)
	productRepo := repositories.NewMongoProductRepository(collection)

	if err := productRepo.EnsureIndexes(ctx); err != nil {
		// Indexes are a performance aid, not a correctness requirement.
		log.Printf("Failed to create indexes: %v", err)
	}

	// --- Seed sample data ---
	if cfg.SeedOnStart {
		if err := seedCatalog(ctx, productRepo); err != nil {
			log.Printf("Error seeding catalog: %v", err)
		}
	}

	// --- Initialize RabbitMQ Client ---
	mqConfig := rabbitmq.Config{URL: cfg.RabbitMQURL}
	mqClient, err := rabbitmq.NewClient(mqConfig)
	if err != nil {
		log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
	}
	defer mqClient.Close()

	// --- Initialize Services ---
	recordValidator := services.NewRecordValidator(cfg)
	bounds := queries.Bounds{Min: cfg.PriceRangeMin, Max: cfg.PriceRangeMax}
	catalogService := services.NewCatalogService(productRepo, recordValidator, mqClient, bounds)

	// --- Initialize Handlers ---
	productHandler := handlers.NewProductHandler(catalogService, cfg)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	productHandler.RegisterRoutes(apiV1)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// The consumer acts as an audit log for catalog mutations.
	go func() {
		log.Println("Starting RabbitMQ consumer for product events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received Product Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeProductEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}()

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
