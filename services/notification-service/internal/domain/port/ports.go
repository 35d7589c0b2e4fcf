package port

import (
	"context"

	"github.com/PatriickRM/loan-banking-system/services/notification-service/internal/domain/model"
)

// NotificationRepository is an append-only store of rendered notifications.
type NotificationRepository interface {
	Save(ctx context.Context, n model.Notification) error
	FindByCustomer(ctx context.Context, customerID string) ([]model.Notification, error)
	FindAll(ctx context.Context) ([]model.Notification, error)
}
