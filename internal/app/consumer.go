package app

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/dev-dotsquares/ecommerce/internal/config"
	"github.com/dev-dotsquares/ecommerce/internal/notify"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer tails the storefront event topic and logs order placements.
// It is the downstream half of notify.Publisher.
func RunConsumer(cfg config.Config, logger *zap.Logger) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.EventsTopic,
		GroupID: "storefront-consumer-group",
	})
	defer reader.Close()
	logger.Info("kafka reader initialized", zap.String("topic", cfg.EventsTopic))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumeMessages(ctx, reader, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	return nil
}

func consumeMessages(ctx context.Context, reader *kafka.Reader, logger *zap.Logger) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("error fetching message", zap.Error(err))
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == notify.EventOrderPlaced {
			handleOrderPlaced(msg.Value, logger)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			logger.Warn("error committing message", zap.Error(err))
		}
	}
}

func handleOrderPlaced(payload []byte, logger *zap.Logger) {
	var event notify.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		logger.Warn("unparsable order event", zap.Error(err))
		return
	}

	logger.Info("order placed event received",
		zap.String("message", event.Message),
		zap.Any("payload", event.Payload),
	)
}

func getHeader(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
