package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/port"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/service"
)

// LoanCreated is the consumed slice of the loan.created contract.
type LoanCreated struct {
	LoanID     string `json:"loanId"`
	CustomerID string `json:"customerId"`
}

// CreateEvaluationUseCase opens and scores an evaluation when a loan
// application arrives. Snapshot fetches are required for correct scoring,
// so an unavailable customer service fails the handler instead of scoring
// against placeholders.
type CreateEvaluationUseCase struct {
	evaluations port.EvaluationRepository
	criteria    port.CriterionRepository
	customers   port.CustomerDirectory
	scoring     *service.ScoringEngine
	logger      *slog.Logger
}

// NewCreateEvaluationUseCase wires dependencies.
func NewCreateEvaluationUseCase(
	evaluations port.EvaluationRepository,
	criteria port.CriterionRepository,
	customers port.CustomerDirectory,
	scoring *service.ScoringEngine,
	logger *slog.Logger,
) *CreateEvaluationUseCase {
	return &CreateEvaluationUseCase{
		evaluations: evaluations,
		criteria:    criteria,
		customers:   customers,
		scoring:     scoring,
		logger:      logger,
	}
}

// Execute scores the customer and persists the evaluation with its audit
// detail rows. A redelivered loan.created event finds the existing
// evaluation and is treated as already handled.
func (uc *CreateEvaluationUseCase) Execute(ctx context.Context, evt LoanCreated) (dto.EvaluationResponse, error) {
	now := time.Now().UTC()

	// 1. One evaluation per loan.
	if existing, err := uc.evaluations.FindByLoanID(ctx, evt.LoanID); err == nil {
		uc.logger.Info("evaluation already exists for loan", "loan_id", evt.LoanID, "evaluation_id", existing.ID())
		return dto.EvaluationResponse{}, apperr.Conflict("evaluation already exists for loan %s", evt.LoanID)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return dto.EvaluationResponse{}, fmt.Errorf("check existing evaluation: %w", err)
	}

	// 2. Fetch the snapshots scoring depends on.
	customer, err := uc.customers.GetCustomer(ctx, evt.CustomerID)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("get customer snapshot: %w", err)
	}
	history, err := uc.customers.GetCreditHistory(ctx, evt.CustomerID)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("get credit history snapshot: %w", err)
	}

	// 3. Score against the active criteria.
	criteria, err := uc.criteria.FindActive(ctx)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("load criteria: %w", err)
	}
	score, details := uc.scoring.Score(criteria, customer, history)

	ev, err := model.NewEvaluation(evt.LoanID, evt.CustomerID, score, now)
	if err != nil {
		return dto.EvaluationResponse{}, err
	}

	// 4. Persist evaluation, audit rows, and any completion event together.
	if err := uc.evaluations.Save(ctx, ev, details); err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("save evaluation: %w", err)
	}

	uc.logger.Info("evaluation created",
		"evaluation_id", ev.ID(),
		"loan_id", evt.LoanID,
		"score", score,
		"recommendation", string(ev.Recommendation()),
		"status", ev.Status().String())
	return dto.ToEvaluationResponse(ev), nil
}
