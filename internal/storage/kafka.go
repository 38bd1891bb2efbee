package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"addis-kitchen/internal/domain"
)

// KafkaPublisher streams lifecycle events (order created, booking created,
// status changed). Callers treat it fire-and-forget; nothing downstream is
// allowed to depend on delivery.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EntityID),
		Value: payload,
	})
}
