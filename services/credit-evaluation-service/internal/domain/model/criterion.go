package model

import (
	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
)

// EvaluationCriterion is an administrator-managed scoring weight. Weight is
// a percentage in [0,100]; the active set need not sum to 100. Changing a
// criterion never rewrites past evaluations, only future ones.
type EvaluationCriterion struct {
	ID     string
	Name   string
	Weight decimal.Decimal
	Active bool
}

// Validate checks the weight bounds.
func (c EvaluationCriterion) Validate() error {
	if c.Name == "" {
		return apperr.Validation("criterion name is required")
	}
	if c.Weight.IsNegative() || c.Weight.GreaterThan(decimal.NewFromInt(100)) {
		return apperr.Validation("criterion weight must be within [0,100], got %s", c.Weight)
	}
	return nil
}

// CriterionScore is one audit row produced by scoring: the sub-score one
// criterion contributed to an evaluation.
type CriterionScore struct {
	CriterionID   string
	CriterionName string
	Score         int
}
