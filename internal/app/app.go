package app

import (
	"context"

	"github.com/dev-dotsquares/ecommerce/internal/config"
	"github.com/dev-dotsquares/ecommerce/internal/notify"
	"github.com/dev-dotsquares/ecommerce/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure and registers every module's routes. State
// containers are constructed here and passed down explicitly; nothing is a
// package-level singleton, so tests can build isolated instances the same way.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	// 1. Durable storage. When redis is unreachable the engine degrades to a
	// session-only in-memory store instead of refusing to start.
	var store storage.Store
	redisClient, err := connectRedisWithRetry(cfg.RedisAddr, 3, logger)
	if err != nil {
		logger.Warn("redis unavailable, state will not survive restarts", zap.Error(err))
		store = storage.NewMemoryStore()
	} else {
		store = storage.NewRedisStore(redisClient)
	}

	// 2. Event side-channel. Kafka is optional; the log notifier always runs.
	notifiers := notify.Fanout{notify.NewLogNotifier(logger)}
	if cfg.KafkaBroker != "" {
		writer, err := connectKafkaWithRetry(cfg.KafkaBroker, cfg.EventsTopic, 3, logger)
		if err != nil {
			logger.Warn("kafka unavailable, events are log-only", zap.Error(err))
		} else {
			notifiers = append(notifiers, notify.NewPublisher(writer, logger))
		}
	}

	// 3. Register modules & routes.
	registerModules(ctx, router, cfg, store, notifiers, logger)

	return nil
}
