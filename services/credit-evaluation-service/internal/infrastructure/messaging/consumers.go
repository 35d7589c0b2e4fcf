package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/kafka"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/application/usecase"
)

const topicLoanCreated = "loan.created"

// NewMux registers the evaluation consumers: every created loan application
// gets scored.
func NewMux(createEvaluation *usecase.CreateEvaluationUseCase, logger *slog.Logger) *kafka.Mux {
	mux := kafka.NewMux(logger)
	mux.Handle(topicLoanCreated, func(ctx context.Context, msg kafka.Message) error {
		var evt usecase.LoanCreated
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			return apperr.MalformedEvent("decode loan.created: %v", err)
		}
		if evt.LoanID == "" || evt.CustomerID == "" {
			return apperr.MalformedEvent("loan.created missing loan or customer id")
		}

		_, err := createEvaluation.Execute(ctx, evt)
		if errors.Is(err, apperr.ErrConflict) {
			// redelivery: the evaluation already exists
			return nil
		}
		return err
	})
	return mux
}
