package usecase

import (
	"context"

	"github.com/PatriickRM/loan-banking-system/services/notification-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/notification-service/internal/domain/port"
)

// QueryNotificationsUseCase serves read-only notification lookups.
type QueryNotificationsUseCase struct {
	notifications port.NotificationRepository
}

func NewQueryNotificationsUseCase(notifications port.NotificationRepository) *QueryNotificationsUseCase {
	return &QueryNotificationsUseCase{notifications: notifications}
}

// ByCustomer returns a customer's notifications, newest first.
func (uc *QueryNotificationsUseCase) ByCustomer(ctx context.Context, customerID string) ([]dto.NotificationResponse, error) {
	notifications, err := uc.notifications.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return dto.ToNotificationResponses(notifications), nil
}

// All lists every stored notification.
func (uc *QueryNotificationsUseCase) All(ctx context.Context) ([]dto.NotificationResponse, error) {
	notifications, err := uc.notifications.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToNotificationResponses(notifications), nil
}
