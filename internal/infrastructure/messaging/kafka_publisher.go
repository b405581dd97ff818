package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/asantefin/asante/internal/domain/event"
	"github.com/asantefin/asante/pkg/events"
	pkgkafka "github.com/asantefin/asante/pkg/kafka"
)

// producer is the broker-facing surface the publisher needs.
type producer interface {
	Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error
}

// KafkaEventPublisher implements port.EventPublisher by writing events to
// Kafka. When the broker is unreachable the events are parked in the outbox
// table instead, so a failed publish never rolls back business state. The
// outbox relay re-delivers them once Kafka is back.
type KafkaEventPublisher struct {
	producer producer
	outbox   events.OutboxRepository
	topic    string
	logger   *slog.Logger
}

// NewKafkaEventPublisher creates a publisher targeting the given Kafka
// producer and topic. outbox may be nil, in which case publish failures are
// surfaced to the caller.
func NewKafkaEventPublisher(producer producer, outbox events.OutboxRepository, topic string, logger *slog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		producer: producer,
		outbox:   outbox,
		topic:    topic,
		logger:   logger,
	}
}

// Publish serialises and sends domain events to Kafka.
func (p *KafkaEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	messages := make([]pkgkafka.Message, 0, len(evts))
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		p.logger.DebugContext(ctx, "publishing domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"tenant_id", evt.TenantID(),
			"topic", p.topic,
			"payload_size", len(payload),
		)

		messages = append(messages, pkgkafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type": evt.EventType(),
				"event_id":   evt.EventID(),
				"tenant_id":  evt.TenantID(),
			},
		})
	}

	if len(messages) == 0 {
		return nil
	}

	if err := p.producer.Publish(ctx, p.topic, messages...); err != nil {
		if p.outbox == nil {
			return fmt.Errorf("failed to publish events to topic %s: %w", p.topic, err)
		}
		return p.park(ctx, evts, err)
	}
	return nil
}

// park stores events in the outbox after a broker failure.
func (p *KafkaEventPublisher) park(ctx context.Context, evts []event.DomainEvent, cause error) error {
	entries := make([]events.OutboxEntry, 0, len(evts))
	for _, evt := range evts {
		entries = append(entries, events.NewOutboxEntry(evt))
	}
	if err := p.outbox.Store(ctx, entries); err != nil {
		return fmt.Errorf("publish to topic %s failed (%v) and outbox store failed: %w", p.topic, cause, err)
	}
	p.logger.WarnContext(ctx, "broker unavailable, events parked in outbox",
		"topic", p.topic,
		"count", len(entries),
		"error", cause,
	)
	return nil
}
