package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/perumahan-service/internal/config"
	"github.com/perumahan-service/internal/pkg/logger"
	"github.com/perumahan-service/internal/repository/postgres"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: migrate [-path dir] up\n")
	flag.PrintDefaults()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	path := flag.String("path", cfg.Server.MigrationsPath, "directory with *.up.sql files")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 || flag.Arg(0) != "up" {
		usage()
		os.Exit(2)
	}

	log, err := logger.New(cfg.Log.Level, zap.String("service", "perumahan-migrate"))
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := postgres.New(ctx, &cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	applied, err := db.ApplyMigrations(ctx, *path)
	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Migrations applied", zap.String("path", *path), zap.Strings("files", applied))
}
