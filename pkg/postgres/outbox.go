package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PatriickRM/loan-banking-system/pkg/events"
)

// InsertOutbox stores outbox entries through q, which is the same
// transaction that persists the aggregate change. Duplicate event ids are
// ignored so a retried use case cannot double-queue.
func InsertOutbox(ctx context.Context, q Querier, entries []events.OutboxEntry) error {
	for _, e := range entries {
		_, err := q.Exec(ctx, `
			INSERT INTO outbox (id, topic, partition_key, aggregate_type, payload, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING
		`, e.ID, e.Topic, e.PartitionKey, e.AggregateType, e.Payload, e.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert outbox entry %s: %w", e.ID, err)
		}
	}
	return nil
}

// OutboxRepo implements events.OutboxRepository against the service-local
// outbox table.
type OutboxRepo struct {
	pool *pgxpool.Pool
}

// NewOutboxRepo creates an outbox repository.
func NewOutboxRepo(pool *pgxpool.Pool) *OutboxRepo {
	return &OutboxRepo{pool: pool}
}

// FetchUnpublished returns the oldest unpublished entries in creation order,
// which is also per-key publish order.
func (r *OutboxRepo) FetchUnpublished(ctx context.Context, batchSize int) ([]events.OutboxEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, topic, partition_key, aggregate_type, payload, created_at
		FROM outbox
		WHERE published_at IS NULL
		ORDER BY created_at, id
		LIMIT $1
	`, batchSize)
	if err != nil {
		return nil, fmt.Errorf("fetch unpublished outbox entries: %w", err)
	}
	defer rows.Close()

	var entries []events.OutboxEntry
	for rows.Next() {
		var e events.OutboxEntry
		if err := rows.Scan(&e.ID, &e.Topic, &e.PartitionKey, &e.AggregateType, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outbox entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// MarkPublished stamps entries as delivered.
func (r *OutboxRepo) MarkPublished(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE outbox SET published_at = now() WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return fmt.Errorf("mark outbox entries published: %w", err)
	}
	return nil
}
