package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asantefin/asante/pkg/events"
)

// OutboxRepo implements events.OutboxRepository on PostgreSQL. Entries land
// here when the broker is unreachable and are drained by the outbox relay.
type OutboxRepo struct {
	pool *pgxpool.Pool
}

// NewOutboxRepo creates a new PostgreSQL-backed outbox repository.
func NewOutboxRepo(pool *pgxpool.Pool) *OutboxRepo {
	return &OutboxRepo{pool: pool}
}

// Store inserts entries, ignoring duplicates so retried writes are safe.
func (r *OutboxRepo) Store(ctx context.Context, entries []events.OutboxEntry) error {
	query := `
		INSERT INTO outbox_events (
			id, aggregate_id, aggregate_type, event_type, payload, created_at, published_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO NOTHING
	`
	for _, e := range entries {
		_, err := r.pool.Exec(ctx, query,
			e.ID, e.AggregateID, e.AggregateType, e.EventType,
			e.Payload, e.CreatedAt, e.PublishedAt,
		)
		if err != nil {
			return fmt.Errorf("store outbox entry %s: %w", e.ID, err)
		}
	}
	return nil
}

// FetchUnpublished returns the oldest unpublished entries, up to batchSize.
func (r *OutboxRepo) FetchUnpublished(ctx context.Context, batchSize int) ([]events.OutboxEntry, error) {
	query := `
		SELECT id, aggregate_id, aggregate_type, event_type, payload, created_at, published_at
		FROM outbox_events
		WHERE published_at IS NULL
		ORDER BY created_at
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, batchSize)
	if err != nil {
		return nil, fmt.Errorf("query outbox entries: %w", err)
	}
	defer rows.Close()

	var result []events.OutboxEntry
	for rows.Next() {
		var e events.OutboxEntry
		err := rows.Scan(&e.ID, &e.AggregateID, &e.AggregateType, &e.EventType,
			&e.Payload, &e.CreatedAt, &e.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("scan outbox entry: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// MarkPublished stamps the given entries with the current time.
func (r *OutboxRepo) MarkPublished(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx,
		`UPDATE outbox_events SET published_at = $1 WHERE id = ANY($2)`,
		time.Now().UTC(), ids,
	)
	if err != nil {
		return fmt.Errorf("mark outbox entries published: %w", err)
	}
	return nil
}
