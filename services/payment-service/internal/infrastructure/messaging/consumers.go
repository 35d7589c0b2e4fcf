package messaging

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/kafka"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/application/usecase"
)

const topicLoanDisbursed = "loan.disbursed"

// NewMux registers the payment-service event consumers: loan.disbursed
// expands into the installment schedule.
func NewMux(generateSchedule *usecase.GenerateScheduleUseCase, logger *slog.Logger) *kafka.Mux {
	mux := kafka.NewMux(logger)
	mux.Handle(topicLoanDisbursed, func(ctx context.Context, msg kafka.Message) error {
		var evt usecase.LoanDisbursed
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			return apperr.MalformedEvent("decode loan.disbursed: %v", err)
		}
		if evt.LoanID == "" {
			return apperr.MalformedEvent("loan.disbursed missing loan id")
		}
		return generateSchedule.Execute(ctx, evt)
	})
	return mux
}
