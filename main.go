package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/streadway/amqp"

	"inventaris/internal/config"
	"inventaris/internal/handlers"
	"inventaris/internal/middleware"
	"inventaris/internal/repositories"
	"inventaris/internal/services"
	"inventaris/internal/token"
	"inventaris/pkg/database"
	"inventaris/pkg/logger"
	"inventaris/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	// Prices serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	// --- Store ---
	db, err := database.Open(database.Config{Driver: cfg.DatabaseDriver, DSN: cfg.DatabaseDSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		events = mqClient
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	// --- Token codec and services ---
	codec := token.NewCodec(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, codec)
	productService := services.NewProductService(productRepo, events, cfg.CatalogMode)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	productHandler := handlers.NewProductHandler(productService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(fiberlogger.New())

	apiV1 := app.Group("/api/v1")

	// Authentication routes (public).
	authHandler.RegisterRoutes(apiV1)

	// Protected routes.
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(codec))
	userHandler.RegisterRoutes(protectedRoutes)
	productHandler.RegisterRoutes(protectedRoutes)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"mode":   cfg.CatalogMode,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// --- Catalog event consumer ---
	if mqClient != nil {
		if consumerErr := mqClient.ConsumeCatalogEvents(func(msg amqp.Delivery) error {
			log.Info().Uint64("tag", msg.DeliveryTag).RawJSON("event", msg.Body).Msg("catalog event")
			return nil
		}); consumerErr != nil {
			log.Error().Err(consumerErr).Msg("failed to start catalog event consumer")
		}
	}

	// --- Start HTTP server ---
	log.Info().Str("port", cfg.AppPort).Str("mode", cfg.CatalogMode).Msg("starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}

	log.Info().Msg("server gracefully stopped")
}
