package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PatriickRM/loan-banking-system/pkg/kafka"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/event"
)

// OverduePublisher implements port.OverduePublisher by writing overdue
// notices straight to the broker. The scan never mutates stored state, so
// there is no transaction to anchor an outbox row in.
type OverduePublisher struct {
	producer *kafka.Producer
}

// NewOverduePublisher wraps a producer for the overdue scan.
func NewOverduePublisher(producer *kafka.Producer) *OverduePublisher {
	return &OverduePublisher{producer: producer}
}

// PublishOverdue sends a single notice keyed by loan id.
func (p *OverduePublisher) PublishOverdue(ctx context.Context, notice event.PaymentOverdue) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("marshal overdue notice: %w", err)
	}
	return p.producer.Publish(ctx, notice.EventType(), kafka.Message{
		Key:   []byte(notice.PartitionKey()),
		Value: payload,
		Headers: map[string]string{
			"event_id":   notice.EventID(),
			"event_type": notice.EventType(),
		},
	})
}
