package dto

import (
	"time"

	"github.com/PatriickRM/loan-banking-system/services/notification-service/internal/domain/model"
)

// NotificationResponse is the REST representation of a stored notification.
type NotificationResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	EventType  string    `json:"eventType"`
	Channel    string    `json:"channel"`
	Status     string    `json:"status"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sentAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToNotificationResponse maps a stored notification.
func ToNotificationResponse(n model.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		CustomerID: n.CustomerID,
		EventType:  n.EventType,
		Channel:    n.Channel,
		Status:     n.Status,
		Subject:    n.Subject,
		Body:       n.Body,
		SentAt:     n.SentAt,
		CreatedAt:  n.CreatedAt,
	}
}

// ToNotificationResponses maps a slice of notifications.
func ToNotificationResponses(notifications []model.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, ToNotificationResponse(n))
	}
	return out
}
