package main

import (
	"log"

	"github.com/dev-dotsquares/ecommerce/internal/app"
	"github.com/dev-dotsquares/ecommerce/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.KafkaBroker == "" {
		log.Fatal("KAFKA_BROKER must be set for the consumer")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := app.RunConsumer(cfg, logger); err != nil {
		logger.Fatal("consumer error", zap.Error(err))
	}
}
