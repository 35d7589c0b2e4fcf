package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/port"
)

// ProcessPaymentUseCase settles the earliest pending installment of a loan.
type ProcessPaymentUseCase struct {
	schedules port.ScheduleRepository
	payments  port.PaymentRepository
	loans     port.LoanDirectory
	now       func() time.Time
	logger    *slog.Logger
}

func NewProcessPaymentUseCase(
	schedules port.ScheduleRepository,
	payments port.PaymentRepository,
	loans port.LoanDirectory,
	logger *slog.Logger,
) *ProcessPaymentUseCase {
	return &ProcessPaymentUseCase{
		schedules: schedules,
		payments:  payments,
		loans:     loans,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

// Execute records a payment against the loan's earliest pending
// installment. The amount must cover it in full; paying late adds a 5%
// fee on the installment amount. Loan lookup failures propagate, a
// payment without a resolvable customer must not go through.
func (uc *ProcessPaymentUseCase) Execute(ctx context.Context, req dto.ProcessPaymentRequest) (dto.PaymentResponse, error) {
	// 1. Find the installment to settle.
	entry, err := uc.schedules.FindFirstPending(ctx, req.LoanID)
	if err != nil {
		return dto.PaymentResponse{}, err
	}

	// 2. Resolve the customer through the loan service.
	loan, err := uc.loans.GetLoan(ctx, req.LoanID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("resolving loan %s: %w", req.LoanID, err)
	}

	// 3. Build the payment record and its event.
	payment, err := model.NewPayment(entry, loan.CustomerID, req.Amount,
		req.PaymentMethod, req.ReferenceNumber, req.Notes, req.ProcessedBy, uc.now())
	if err != nil {
		return dto.PaymentResponse{}, err
	}

	// 4. Persist payment, mark the entry paid and stage the event.
	if err := uc.payments.Record(ctx, payment); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("recording payment for loan %s: %w", req.LoanID, err)
	}

	uc.logger.Info("payment recorded",
		slog.String("payment_id", payment.ID),
		slog.String("loan_id", payment.LoanID),
		slog.Int("installment", payment.InstallmentNumber),
		slog.String("amount", payment.Amount.String()),
		slog.String("late_fee", payment.LateFee.String()))
	return dto.ToPaymentResponse(payment), nil
}
