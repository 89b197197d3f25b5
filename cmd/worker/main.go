package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/perumahan-service/internal/config"
	"github.com/perumahan-service/internal/pkg/logger"
	"github.com/perumahan-service/internal/repository/postgres"
	redisRepo "github.com/perumahan-service/internal/repository/redis"
	"github.com/perumahan-service/internal/usecase"
	"github.com/perumahan-service/internal/worker"
	"github.com/perumahan-service/internal/worker/audit"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Без Redis событий нет - воркеру нечего читать
	if !cfg.Redis.Enabled {
		fmt.Println("Redis is disabled in configuration. Set REDIS_ENABLED=true to run the audit worker.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, zap.String("service", "perumahan-worker"))
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting Perumahan Audit Worker")
	log.Info("Configuration loaded",
		zap.String("stream", cfg.Events.Stream),
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize))

	// 3. Connect to PostgreSQL
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer connectCancel()

	db, err := postgres.New(connectCtx, &cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := redisRepo.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Repositories and use cases
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	auditUC := usecase.NewAuditUseCase(postgres.NewEventLogRepository(db), log)

	// 6. Workers
	manager := worker.NewManager(log)
	manager.Register(audit.NewWorker(
		streamRepo,
		auditUC,
		cfg.Events.Stream,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		log,
	))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	log.Info("Worker started successfully")

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down worker gracefully...")

	if err := manager.Stop(); err != nil {
		log.Error("Worker shutdown error", zap.Error(err))
	}
	cancel()

	log.Info("Worker stopped successfully")
}
