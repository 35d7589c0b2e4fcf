package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/port"
)

// DecideLoanUseCase carries the underwriting decisions: approve, reject and
// cancel. Each transition is persisted with its outbox entries in one
// transaction.
type DecideLoanUseCase struct {
	loans port.LoanRepository
}

// NewDecideLoanUseCase wires dependencies.
func NewDecideLoanUseCase(loans port.LoanRepository) *DecideLoanUseCase {
	return &DecideLoanUseCase{loans: loans}
}

// Approve moves a PENDING loan to APPROVED, re-amortizing with the approved
// amount as principal.
func (uc *DecideLoanUseCase) Approve(ctx context.Context, id string, req dto.ApproveLoanRequest) (dto.LoanResponse, error) {
	loan, err := uc.loans.FindByID(ctx, id)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	loan, err = loan.Approve(req.ApprovedAmount, req.EvaluatedBy, time.Now().UTC())
	if err != nil {
		return dto.LoanResponse{}, err
	}
	if err := uc.loans.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}
	return dto.ToLoanResponse(loan), nil
}

// Reject moves a PENDING loan to REJECTED.
func (uc *DecideLoanUseCase) Reject(ctx context.Context, id string, req dto.RejectLoanRequest) (dto.LoanResponse, error) {
	loan, err := uc.loans.FindByID(ctx, id)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	loan, err = loan.Reject(req.Reason, req.EvaluatedBy, time.Now().UTC())
	if err != nil {
		return dto.LoanResponse{}, err
	}
	if err := uc.loans.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}
	return dto.ToLoanResponse(loan), nil
}

// Cancel withdraws a PENDING application at the customer's request.
func (uc *DecideLoanUseCase) Cancel(ctx context.Context, id string) (dto.LoanResponse, error) {
	loan, err := uc.loans.FindByID(ctx, id)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	loan, err = loan.Cancel(time.Now().UTC())
	if err != nil {
		return dto.LoanResponse{}, err
	}
	if err := uc.loans.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}
	return dto.ToLoanResponse(loan), nil
}

// Disburse moves an APPROVED loan to ACTIVE; loan.disbursed triggers schedule
// generation downstream.
func (uc *DecideLoanUseCase) Disburse(ctx context.Context, id string) (dto.LoanResponse, error) {
	loan, err := uc.loans.FindByID(ctx, id)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	loan, err = loan.Disburse(time.Now().UTC())
	if err != nil {
		return dto.LoanResponse{}, err
	}
	if err := uc.loans.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}
	return dto.ToLoanResponse(loan), nil
}
