package notify

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher mirrors storefront events onto a Kafka topic so downstream
// consumers (see cmd/consumer) can react to them.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewPublisher(writer *kafka.Writer, logger *zap.Logger) *Publisher {
	if writer == nil {
		panic("kafka writer cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{writer: writer, logger: logger}
}

func (p *Publisher) Notify(ctx context.Context, event Event) {
	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal event", zap.String("type", event.Type), zap.Error(err))
		return
	}

	msg := kafka.Message{
		Key:   []byte(uuid.New().String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		// Event delivery is best-effort; the user-facing flow already carries
		// the confirmation message in its response.
		p.logger.Warn("failed to publish event", zap.String("type", event.Type), zap.Error(err))
	}
}
