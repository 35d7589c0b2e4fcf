package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the interface all domain events must implement. The concrete
// event struct carries the contract payload; the metadata below travels in
// the outbox row and in broker headers, never inside the payload itself.
type DomainEvent interface {
	EventID() string
	// EventType doubles as the broker topic, e.g. "loan.created".
	EventType() string
	// PartitionKey is the business key consumers are ordered by. For every
	// event in the loan saga this is the loan id, so that loan.disbursed and
	// the payment.received stream for one loan land on the same partition.
	PartitionKey() string
	AggregateType() string
	OccurredAt() time.Time
}

// BaseEvent provides a default implementation of DomainEvent for embedding.
type BaseEvent struct {
	id            string
	eventType     string
	partitionKey  string
	aggregateType string
	occurredAt    time.Time
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the current UTC time.
func NewBaseEvent(eventType, aggregateType, partitionKey string) BaseEvent {
	return BaseEvent{
		id:            uuid.New().String(),
		eventType:     eventType,
		partitionKey:  partitionKey,
		aggregateType: aggregateType,
		occurredAt:    time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() string       { return e.id }
func (e BaseEvent) EventType() string     { return e.eventType }
func (e BaseEvent) PartitionKey() string  { return e.partitionKey }
func (e BaseEvent) AggregateType() string { return e.aggregateType }
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }
