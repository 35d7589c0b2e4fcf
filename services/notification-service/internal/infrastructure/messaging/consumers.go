package messaging

import (
	"context"
	"log/slog"

	"github.com/PatriickRM/loan-banking-system/pkg/kafka"
	"github.com/PatriickRM/loan-banking-system/services/notification-service/internal/application/usecase"
	"github.com/PatriickRM/loan-banking-system/services/notification-service/internal/domain/service"
)

// NewMux registers one consumer per event type the template table knows.
// The registry drives the subscription list, so adding a template
// automatically adds its consumer.
func NewMux(templates *service.TemplateRegistry, dispatch *usecase.DispatchNotificationUseCase, logger *slog.Logger) *kafka.Mux {
	mux := kafka.NewMux(logger)
	for _, topic := range templates.Topics() {
		mux.Handle(topic, func(ctx context.Context, msg kafka.Message) error {
			return dispatch.Execute(ctx, topic, msg.Value)
		})
	}
	return mux
}
