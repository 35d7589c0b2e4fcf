package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/notification-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/notification-service/internal/domain/port"
	"github.com/PatriickRM/loan-banking-system/services/notification-service/internal/domain/service"
)

// DispatchNotificationUseCase renders an incoming event through the
// template table and records the result. Delivery is a structured log
// line; the stored notification is the audit trail.
type DispatchNotificationUseCase struct {
	templates     *service.TemplateRegistry
	notifications port.NotificationRepository
	now           func() time.Time
	logger        *slog.Logger
}

func NewDispatchNotificationUseCase(
	templates *service.TemplateRegistry,
	notifications port.NotificationRepository,
	logger *slog.Logger,
) *DispatchNotificationUseCase {
	return &DispatchNotificationUseCase{
		templates:     templates,
		notifications: notifications,
		now:           func() time.Time { return time.Now().UTC() },
		logger:        logger,
	}
}

// Execute handles one event. Malformed payloads propagate so the consumer
// drops them; render failures with a known customer are recorded as FAILED.
func (uc *DispatchNotificationUseCase) Execute(ctx context.Context, eventType string, payload []byte) error {
	rendered, err := uc.templates.Render(eventType, payload)
	if err != nil {
		return err
	}
	if rendered.CustomerID == "" {
		return apperr.MalformedEvent("%s missing customer id", eventType)
	}

	n := model.NewSentNotification(rendered.CustomerID, eventType,
		rendered.Subject, rendered.Body, uc.now())

	uc.logger.Info("notification sent",
		slog.String("customer_id", n.CustomerID),
		slog.String("event_type", eventType),
		slog.String("subject", n.Subject))

	if err := uc.notifications.Save(ctx, n); err != nil {
		return fmt.Errorf("saving notification for %s: %w", rendered.CustomerID, err)
	}
	return nil
}
