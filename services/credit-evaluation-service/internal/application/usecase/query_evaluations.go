package usecase

import (
	"context"
	"fmt"

	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/port"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/valueobject"
)

// QueryEvaluationsUseCase serves the evaluation read endpoints.
type QueryEvaluationsUseCase struct {
	evaluations port.EvaluationRepository
}

// NewQueryEvaluationsUseCase wires dependencies.
func NewQueryEvaluationsUseCase(evaluations port.EvaluationRepository) *QueryEvaluationsUseCase {
	return &QueryEvaluationsUseCase{evaluations: evaluations}
}

// ByID returns one evaluation.
func (uc *QueryEvaluationsUseCase) ByID(ctx context.Context, id string) (dto.EvaluationResponse, error) {
	ev, err := uc.evaluations.FindByID(ctx, id)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("find evaluation: %w", err)
	}
	return dto.ToEvaluationResponse(ev), nil
}

// ByLoan returns the evaluation attached to a loan.
func (uc *QueryEvaluationsUseCase) ByLoan(ctx context.Context, loanID string) (dto.EvaluationResponse, error) {
	ev, err := uc.evaluations.FindByLoanID(ctx, loanID)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("find evaluation by loan: %w", err)
	}
	return dto.ToEvaluationResponse(ev), nil
}

// ByStatus lists evaluations in a status, typically the manual review queue.
func (uc *QueryEvaluationsUseCase) ByStatus(ctx context.Context, status string) ([]dto.EvaluationResponse, error) {
	st, err := valueobject.NewEvaluationStatus(status)
	if err != nil {
		return nil, err
	}
	evs, err := uc.evaluations.FindByStatus(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("find evaluations by status: %w", err)
	}
	return dto.ToEvaluationResponses(evs), nil
}

// Details returns the per-criterion audit rows for an evaluation.
func (uc *QueryEvaluationsUseCase) Details(ctx context.Context, evaluationID string) ([]dto.CriterionScoreResponse, error) {
	details, err := uc.evaluations.FindDetails(ctx, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("find evaluation details: %w", err)
	}
	return dto.ToCriterionScoreResponses(details), nil
}
