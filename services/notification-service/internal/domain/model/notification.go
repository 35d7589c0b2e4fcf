package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one rendered message for a customer, append-only.
// Delivery is a log line; the record is the audit trail.
type Notification struct {
	ID         string
	CustomerID string
	EventType  string
	Channel    string
	Status     string
	Subject    string
	Body       string
	SentAt     time.Time
	CreatedAt  time.Time
}

// StatusSent is the only status this flow records: rendering failures are
// dropped before anything is persisted.
const StatusSent = "SENT"

// NewSentNotification records a successfully rendered and delivered message.
func NewSentNotification(customerID, eventType, subject, body string, now time.Time) Notification {
	return Notification{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		EventType:  eventType,
		Channel:    "LOG",
		Status:     StatusSent,
		Subject:    subject,
		Body:       body,
		SentAt:     now,
		CreatedAt:  now,
	}
}
