package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/port"
)

// PaymentReceived is the consumed slice of the payment.received contract.
// Unknown fields in the payload are ignored.
type PaymentReceived struct {
	PaymentID     string          `json:"paymentId"`
	LoanID        string          `json:"loanId"`
	PrincipalPaid decimal.Decimal `json:"principalPaid"`
}

// ApplyPaymentUseCase consumes payment.received and decrements the loan's
// outstanding balance. Redelivered events are detected by payment id and
// skipped, so the balance is never subtracted twice.
type ApplyPaymentUseCase struct {
	loans  port.LoanRepository
	logger *slog.Logger
}

// NewApplyPaymentUseCase wires dependencies.
func NewApplyPaymentUseCase(loans port.LoanRepository, logger *slog.Logger) *ApplyPaymentUseCase {
	return &ApplyPaymentUseCase{loans: loans, logger: logger}
}

// Execute applies the principal portion of a payment to the loan.
func (uc *ApplyPaymentUseCase) Execute(ctx context.Context, evt PaymentReceived) error {
	loan, err := uc.loans.FindByID(ctx, evt.LoanID)
	if err != nil {
		return fmt.Errorf("find loan: %w", err)
	}

	loan, err = loan.ApplyPrincipal(evt.PrincipalPaid, time.Now().UTC())
	if err != nil {
		return err
	}

	applied, err := uc.loans.SaveAppliedPayment(ctx, loan, evt.PaymentID)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	if !applied {
		uc.logger.Info("duplicate payment event skipped",
			"payment_id", evt.PaymentID, "loan_id", evt.LoanID)
		return nil
	}

	uc.logger.Info("payment applied",
		"payment_id", evt.PaymentID,
		"loan_id", evt.LoanID,
		"principal_paid", evt.PrincipalPaid,
		"outstanding_balance", loan.OutstandingBalance(),
		"status", loan.Status().String())
	return nil
}
