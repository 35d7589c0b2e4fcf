package usecase

import (
	"context"

	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/port"
)

// QueryPaymentsUseCase serves read-only payment lookups.
type QueryPaymentsUseCase struct {
	payments port.PaymentRepository
}

func NewQueryPaymentsUseCase(payments port.PaymentRepository) *QueryPaymentsUseCase {
	return &QueryPaymentsUseCase{payments: payments}
}

// ByID returns a single payment.
func (uc *QueryPaymentsUseCase) ByID(ctx context.Context, id string) (dto.PaymentResponse, error) {
	payment, err := uc.payments.FindByID(ctx, id)
	if err != nil {
		return dto.PaymentResponse{}, err
	}
	return dto.ToPaymentResponse(payment), nil
}

// ByLoan returns all payments recorded against a loan.
func (uc *QueryPaymentsUseCase) ByLoan(ctx context.Context, loanID string) ([]dto.PaymentResponse, error) {
	payments, err := uc.payments.FindByLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return dto.ToPaymentResponses(payments), nil
}
