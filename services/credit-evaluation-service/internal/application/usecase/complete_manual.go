package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/port"
)

// CompleteManualUseCase finishes an in-review evaluation with a reviewer's
// score.
type CompleteManualUseCase struct {
	evaluations port.EvaluationRepository
}

// NewCompleteManualUseCase wires dependencies.
func NewCompleteManualUseCase(evaluations port.EvaluationRepository) *CompleteManualUseCase {
	return &CompleteManualUseCase{evaluations: evaluations}
}

// Execute blends the manual score, completes the evaluation and queues
// evaluation.completed.
func (uc *CompleteManualUseCase) Execute(ctx context.Context, id string, req dto.ManualEvaluationRequest) (dto.EvaluationResponse, error) {
	ev, err := uc.evaluations.FindByID(ctx, id)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("find evaluation: %w", err)
	}

	ev, err = ev.CompleteManual(req.ManualScore, req.EvaluatorID, req.EvaluatorName, req.Comments, time.Now().UTC())
	if err != nil {
		return dto.EvaluationResponse{}, err
	}

	if err := uc.evaluations.Save(ctx, ev, nil); err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("save evaluation: %w", err)
	}
	return dto.ToEvaluationResponse(ev), nil
}
