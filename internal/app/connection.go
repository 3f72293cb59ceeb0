package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func connectRedisWithRetry(addr string, maxRetries int, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	var err error
	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err = rdb.Ping(ctx).Err()
		cancel()
		if err == nil {
			logger.Info("connected to redis", zap.String("addr", addr))
			return rdb, nil
		}

		logger.Warn("redis connection retry failed",
			zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		time.Sleep(2 * time.Second)
	}

	return nil, err
}

func connectKafkaWithRetry(broker, topic string, maxRetries int, logger *zap.Logger) (*kafka.Writer, error) {
	var err error
	for i := 1; i <= maxRetries; i++ {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		}

		var conn *kafka.Conn
		conn, err = kafka.Dial("tcp", broker)
		if err == nil {
			conn.Close()
			logger.Info("connected to kafka", zap.String("broker", broker))
			return writer, nil
		}

		logger.Warn("kafka connection retry failed",
			zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		time.Sleep(2 * time.Second)
	}

	return nil, err
}
