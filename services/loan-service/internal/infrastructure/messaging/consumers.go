package messaging

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/kafka"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/application/usecase"
)

const topicPaymentReceived = "payment.received"

// NewMux registers the loan-service event consumers: payment.received drives
// the outstanding balance down and completes the loan at zero.
func NewMux(applyPayment *usecase.ApplyPaymentUseCase, logger *slog.Logger) *kafka.Mux {
	mux := kafka.NewMux(logger)
	mux.Handle(topicPaymentReceived, func(ctx context.Context, msg kafka.Message) error {
		var evt usecase.PaymentReceived
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			return apperr.MalformedEvent("decode payment.received: %v", err)
		}
		if evt.PaymentID == "" || evt.LoanID == "" {
			return apperr.MalformedEvent("payment.received missing payment or loan id")
		}
		return applyPayment.Execute(ctx, evt)
	})
	return mux
}
