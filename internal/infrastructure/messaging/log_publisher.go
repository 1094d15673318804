package messaging

import (
	"context"
	"log/slog"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/event"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/events"
)

// LogEventPublisher implements port.EventPublisher by logging each event.
// It is the development backend.
type LogEventPublisher struct {
	logger *slog.Logger
}

func NewLogEventPublisher(logger *slog.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger}
}

func (p *LogEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	for _, evt := range evts {
		payload, err := events.Marshal(evt)
		if err != nil {
			return err
		}
		p.logger.InfoContext(ctx, "domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"aggregate_type", evt.AggregateType(),
			"payload", string(payload),
		)
	}
	return nil
}
