package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/asantefin/asante/pkg/events"
	pkgkafka "github.com/asantefin/asante/pkg/kafka"
)

const relayBatchSize = 100

// OutboxRelay periodically drains parked events from the outbox table back
// to Kafka. It is the second half of the publish fallback in
// KafkaEventPublisher.
type OutboxRelay struct {
	outbox   events.OutboxRepository
	producer producer
	topic    string
	interval time.Duration
	logger   *slog.Logger
}

// NewOutboxRelay creates a relay polling the outbox at the given interval.
func NewOutboxRelay(outbox events.OutboxRepository, producer producer, topic string, interval time.Duration, logger *slog.Logger) *OutboxRelay {
	return &OutboxRelay{
		outbox:   outbox,
		producer: producer,
		topic:    topic,
		interval: interval,
		logger:   logger,
	}
}

// Start runs the relay loop until ctx is cancelled.
func (r *OutboxRelay) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.drain(ctx); err != nil {
				r.logger.ErrorContext(ctx, "outbox drain failed", "error", err)
			}
		}
	}
}

// drain publishes one batch of unpublished entries and marks them done.
func (r *OutboxRelay) drain(ctx context.Context) error {
	entries, err := r.outbox.FetchUnpublished(ctx, relayBatchSize)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	messages := make([]pkgkafka.Message, 0, len(entries))
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		messages = append(messages, pkgkafka.Message{
			Key:   []byte(e.AggregateID),
			Value: e.Payload,
			Headers: map[string]string{
				"event_type": e.EventType,
				"event_id":   e.ID,
			},
		})
		ids = append(ids, e.ID)
	}

	if err := r.producer.Publish(ctx, r.topic, messages...); err != nil {
		return err
	}
	if err := r.outbox.MarkPublished(ctx, ids); err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "outbox entries re-delivered",
		"topic", r.topic,
		"count", len(ids),
	)
	return nil
}
