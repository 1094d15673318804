// Package messaging holds the adapters that deliver domain events to the
// notification service.
package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/event"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/events"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/kafka"
)

// MessageProducer is satisfied by *kafka.Producer.
type MessageProducer interface {
	Publish(ctx context.Context, topic string, messages ...kafka.Message) error
}

// KafkaEventPublisher implements port.EventPublisher by writing events to Kafka.
// Events are keyed by aggregate ID so a submission's events stay ordered.
type KafkaEventPublisher struct {
	producer MessageProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaEventPublisher creates a publisher targeting the given topic.
func NewKafkaEventPublisher(producer MessageProducer, topic string, logger *slog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish serialises and sends domain events in one batch.
func (p *KafkaEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if len(evts) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		payload, err := events.Marshal(evt)
		if err != nil {
			return err
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"content-type": "application/json",
				"event-type":   evt.EventType(),
				"event-id":     evt.EventID(),
			},
		})
	}

	if err := p.producer.Publish(ctx, p.topic, msgs...); err != nil {
		return fmt.Errorf("publish %d events: %w", len(msgs), err)
	}

	for _, evt := range evts {
		p.logger.DebugContext(ctx, "published domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"topic", p.topic,
		)
	}
	return nil
}
