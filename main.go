package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/CodeSmart-NG/school-service/internal/admin"
	"github.com/CodeSmart-NG/school-service/internal/bootstrap"
	"github.com/CodeSmart-NG/school-service/internal/config"
	"github.com/CodeSmart-NG/school-service/internal/events"
	"github.com/CodeSmart-NG/school-service/internal/handlers"
	"github.com/CodeSmart-NG/school-service/internal/notify"
	"github.com/CodeSmart-NG/school-service/internal/repositories/postgres"
	"github.com/CodeSmart-NG/school-service/internal/services"
	"github.com/CodeSmart-NG/school-service/internal/utils"
	"github.com/CodeSmart-NG/school-service/internal/validator"
	"github.com/CodeSmart-NG/school-service/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize database
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis (if configured)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkg.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize Redis: %v", err)
		}
	}

	// Run migrations
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize event publisher
	var publisher events.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = events.NewKafkaEventPublisher(cfg.KafkaBrokers, cfg.EventTopic, slogLogger)
		if err != nil {
			log.Fatalf("Failed to initialize event publisher: %v", err)
		}
	} else {
		publisher = events.NewNoopEventPublisher(slogLogger)
	}

	// Initialize email delivery and wrap the publisher so domain events
	// also notify students and staff
	var email notify.EmailService
	if cfg.SendgridAPIKey != "" {
		email = notify.NewSendgridService(cfg.SendgridAPIKey, "CodeSmart Nigeria", cfg.FromEmail, slogLogger)
	} else {
		email = notify.NewConsoleService(slogLogger)
	}
	notifier := notify.NewNotifier(publisher, email, cfg.AdminEmail, slogLogger)

	// Initialize repositories
	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{
		DB:          db,
		RedisClient: redisClient,
	})
	if err := repoManager.Initialize(); err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}
	repo := repoManager.GetRepository()

	// Seed superadmin and starter catalog on first boot
	ctx := context.Background()
	if err := bootstrap.SeedSuperadmin(ctx, repo, cfg.SuperadminEmail, cfg.SuperadminPassword, slogLogger); err != nil {
		log.Fatalf("Failed to seed superadmin: %v", err)
	}
	if err := bootstrap.SeedCatalog(ctx, repo, slogLogger); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// Initialize validator
	validator := validator.New()

	// Initialize services
	var gateway services.CheckoutGateway
	if cfg.MidtransServerKey != "" {
		gateway = services.NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransProduction)
	} else {
		gateway = services.NewStubGateway()
	}
	serviceManager := services.NewServiceManager(repo, slogLogger, validator, notifier, services.ServiceManagerConfig{
		Gateway: gateway,
	})
	if err := serviceManager.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(serviceManager, logger)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	handlers.SetupMiddleware(router, logger)

	// Setup routes
	handlerManager.SetupRoutes(router)

	// Mount the admin panel
	registry, err := admin.BuildResources(repo, validator)
	if err != nil {
		log.Fatalf("Failed to build admin resources: %v", err)
	}
	sessions, err := admin.NewSessionManager(cfg.AdminSessionSecret, cfg.AdminSessionMaxAge, repo.User())
	if err != nil {
		log.Fatalf("Failed to initialize admin sessions: %v", err)
	}
	panel := admin.NewPanel(registry, sessions, repo, validator, logger, cfg.AdminRootPath)
	panel.Mount(router)

	// Create HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Shutdown services
	if err := serviceManager.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}

	// Flush and close the event publisher
	if err := notifier.Close(); err != nil {
		log.Printf("Failed to close event publisher: %v", err)
	}

	// Close database connection
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	// Close Redis connection
	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("Server exited")
}
