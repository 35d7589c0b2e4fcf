package events

import (
	"context"
	"log/slog"
	"time"
)

// Relay polls the outbox for committed-but-unpublished entries and pushes
// them to the broker. Publishing happens after the local transaction has
// committed, so delivery is at-least-once: a crash between publish and
// MarkPublished redelivers, and consumers are required to be idempotent.
type Relay struct {
	repo      OutboxRepository
	publisher Publisher
	logger    *slog.Logger
	interval  time.Duration
	batchSize int
}

// NewRelay creates a relay. interval <= 0 defaults to one second,
// batchSize <= 0 to 100.
func NewRelay(repo OutboxRepository, publisher Publisher, logger *slog.Logger, interval time.Duration, batchSize int) *Relay {
	if interval <= 0 {
		interval = time.Second
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Relay{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		interval:  interval,
		batchSize: batchSize,
	}
}

// Run blocks, draining the outbox on every tick until the context is canceled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopping")
			return
		case <-ticker.C:
			if err := r.Drain(ctx); err != nil {
				r.logger.Error("outbox drain failed", "error", err)
			}
		}
	}
}

// Drain publishes one batch of unpublished entries. Entries that fail to
// publish stay unpublished and are retried on the next tick.
func (r *Relay) Drain(ctx context.Context) error {
	entries, err := r.repo.FetchUnpublished(ctx, r.batchSize)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	published := make([]string, 0, len(entries))
	for _, entry := range entries {
		headers := map[string]string{
			"event_id":   entry.ID,
			"event_type": entry.Topic,
		}
		if err := r.publisher.Publish(ctx, entry.Topic, entry.PartitionKey, entry.Payload, headers); err != nil {
			r.logger.Error("publish outbox entry failed",
				"event_id", entry.ID,
				"topic", entry.Topic,
				"error", err,
			)
			break // keep per-key ordering: do not publish past a failure
		}
		published = append(published, entry.ID)
	}

	if len(published) == 0 {
		return nil
	}
	return r.repo.MarkPublished(ctx, published)
}
