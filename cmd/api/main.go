package main

// @title Perumahan Service API
// @version 1.0.0
// @description Каталог жилых комплексов (perumahan) с картой: публичные страницы,
// @description GeoJSON для карты и админский API для управления объявлениями.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.basic BasicAuth

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/perumahan-service/docs"
	"github.com/perumahan-service/internal/config"
	httpDelivery "github.com/perumahan-service/internal/delivery/http"
	"github.com/perumahan-service/internal/delivery/http/handler"
	"github.com/perumahan-service/internal/domain/repository"
	"github.com/perumahan-service/internal/infrastructure/storage"
	"github.com/perumahan-service/internal/pkg/logger"
	"github.com/perumahan-service/internal/repository/postgres"
	redisrepo "github.com/perumahan-service/internal/repository/redis"
	"github.com/perumahan-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, zap.String("service", "perumahan"))
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting Perumahan Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	// 3. Connect to PostgreSQL
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.New(ctx, &cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	if cfg.Server.Env == "development" {
		applied, err := db.ApplyMigrations(ctx, cfg.Server.MigrationsPath)
		if err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
		log.Info("Migrations applied", zap.Strings("files", applied))
	}

	// 4. Event publisher: Redis Streams или noop
	healthChecks := map[string]handler.HealthChecker{"database": db}

	var (
		redisClient *redisrepo.Redis
		publisher   repository.EventPublisher
	)
	if cfg.Redis.Enabled {
		redisClient, err = redisrepo.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		publisher = redisrepo.NewStreamPublisher(redisClient.Client(), log)
		healthChecks["redis"] = redisClient
		log.Info("Redis connected")
	} else {
		publisher = redisrepo.NewNoopPublisher(log)
		log.Info("Redis disabled, events are not published")
	}

	// 5. Photo storage
	photos, err := storage.NewLocalStorage(&cfg.Media, log)
	if err != nil {
		log.Fatal("Failed to initialize photo storage", zap.Error(err))
	}

	// 6. Initialize Repositories
	perumahanRepo := postgres.NewPerumahanRepository(db)
	eventLogRepo := postgres.NewEventLogRepository(db)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	perumahanUC := usecase.NewPerumahanUseCase(perumahanRepo, photos, log)
	adminUC := usecase.NewAdminUseCase(perumahanRepo, photos, publisher, cfg.Events.Stream, log)
	auditUC := usecase.NewAuditUseCase(eventLogRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	pageHandler, err := handler.NewPageHandler(perumahanUC, log)
	if err != nil {
		log.Fatal("Failed to parse page templates", zap.Error(err))
	}
	perumahanHandler := handler.NewPerumahanHandler(perumahanUC, log)
	adminHandler := handler.NewAdminHandler(adminUC, auditUC, log)
	healthHandler := handler.NewHealthHandler(healthChecks, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		pageHandler,
		perumahanHandler,
		adminHandler,
		healthHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
