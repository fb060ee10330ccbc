package main

import (
	"context"
	"log"
	"time"

	"compliance-cms/internal/config"
	"compliance-cms/internal/database"
	"compliance-cms/internal/logger"
	"compliance-cms/internal/repository"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	logg.Info("creating indexes")

	mongoDB, err := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase, logg)
	if err != nil {
		logg.Fatal("connect", zap.Error(err))
	}
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	names, err := repository.EnsureIndexes(ctx, mongoDB.Database)
	for _, name := range names {
		logg.Info("index ready", zap.String("index", name))
	}
	if err != nil {
		logg.Fatal("create indexes", zap.Error(err))
	}

	logg.Info("indexes created", zap.Int("count", len(names)))
}
