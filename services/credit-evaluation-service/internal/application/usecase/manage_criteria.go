package usecase

import (
	"context"
	"fmt"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/port"
)

// ManageCriteriaUseCase is the administrator surface for scoring weights.
// Changes apply only to evaluations scored after the change.
type ManageCriteriaUseCase struct {
	criteria port.CriterionRepository
}

// NewManageCriteriaUseCase wires dependencies.
func NewManageCriteriaUseCase(criteria port.CriterionRepository) *ManageCriteriaUseCase {
	return &ManageCriteriaUseCase{criteria: criteria}
}

// List returns every criterion, active or not.
func (uc *ManageCriteriaUseCase) List(ctx context.Context) ([]dto.CriterionResponse, error) {
	criteria, err := uc.criteria.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list criteria: %w", err)
	}
	out := make([]dto.CriterionResponse, 0, len(criteria))
	for _, c := range criteria {
		out = append(out, dto.ToCriterionResponse(c))
	}
	return out, nil
}

// Update changes a criterion's weight or active flag.
func (uc *ManageCriteriaUseCase) Update(ctx context.Context, id string, req dto.UpdateCriterionRequest) (dto.CriterionResponse, error) {
	all, err := uc.criteria.FindAll(ctx)
	if err != nil {
		return dto.CriterionResponse{}, fmt.Errorf("list criteria: %w", err)
	}
	for _, c := range all {
		if c.ID != id {
			continue
		}
		c.Weight = req.Weight
		c.Active = req.Active
		if err := c.Validate(); err != nil {
			return dto.CriterionResponse{}, err
		}
		if err := uc.criteria.Update(ctx, c); err != nil {
			return dto.CriterionResponse{}, fmt.Errorf("update criterion: %w", err)
		}
		return dto.ToCriterionResponse(c), nil
	}
	return dto.CriterionResponse{}, apperr.NotFound("criterion %s not found", id)
}
