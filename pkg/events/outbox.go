package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// OutboxEntry is a domain event persisted in the service-local outbox table,
// in the same transaction as the state change that produced it.
type OutboxEntry struct {
	ID            string
	Topic         string
	PartitionKey  string
	AggregateType string
	Payload       []byte
	CreatedAt     time.Time
	PublishedAt   *time.Time
}

// NewOutboxEntry converts a DomainEvent into an OutboxEntry. The payload is
// the JSON-marshalled event itself, i.e. the wire contract.
func NewOutboxEntry(event DomainEvent) (OutboxEntry, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxEntry{}, fmt.Errorf("marshal event %s: %w", event.EventType(), err)
	}
	return OutboxEntry{
		ID:            event.EventID(),
		Topic:         event.EventType(),
		PartitionKey:  event.PartitionKey(),
		AggregateType: event.AggregateType(),
		Payload:       payload,
		CreatedAt:     event.OccurredAt(),
	}, nil
}

// Entries converts a batch of domain events, failing on the first
// unmarshallable event.
func Entries(evts []DomainEvent) ([]OutboxEntry, error) {
	out := make([]OutboxEntry, 0, len(evts))
	for _, e := range evts {
		entry, err := NewOutboxEntry(e)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// OutboxRepository is the port for outbox persistence.
type OutboxRepository interface {
	FetchUnpublished(ctx context.Context, batchSize int) ([]OutboxEntry, error)
	MarkPublished(ctx context.Context, ids []string) error
}

// Publisher delivers a serialized event to the message broker.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}
