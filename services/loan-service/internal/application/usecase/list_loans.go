package usecase

import (
	"context"
	"fmt"

	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/port"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/valueobject"
)

// ListLoansUseCase serves the loan list queries.
type ListLoansUseCase struct {
	loans port.LoanRepository
}

// NewListLoansUseCase wires dependencies.
func NewListLoansUseCase(loans port.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{loans: loans}
}

// ByCustomer lists all loans belonging to a customer.
func (uc *ListLoansUseCase) ByCustomer(ctx context.Context, customerID string) ([]dto.LoanResponse, error) {
	loans, err := uc.loans.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("find loans by customer: %w", err)
	}
	return dto.ToLoanResponses(loans), nil
}

// ByStatus lists all loans in a given status.
func (uc *ListLoansUseCase) ByStatus(ctx context.Context, status string) ([]dto.LoanResponse, error) {
	st, err := valueobject.NewLoanStatus(status)
	if err != nil {
		return nil, err
	}
	loans, err := uc.loans.FindByStatus(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("find loans by status: %w", err)
	}
	return dto.ToLoanResponses(loans), nil
}
