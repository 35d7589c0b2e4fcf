package port

import (
	"context"

	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/valueobject"
)

// EvaluationRepository persists evaluation aggregates with their outbox
// entries, plus the per-criterion audit rows produced by scoring.
type EvaluationRepository interface {
	// Save upserts the evaluation; details, when non-nil, replace any audit
	// rows already stored for the evaluation id so re-scoring cannot
	// duplicate them.
	Save(ctx context.Context, ev model.Evaluation, details []model.CriterionScore) error
	FindByID(ctx context.Context, id string) (model.Evaluation, error)
	FindByLoanID(ctx context.Context, loanID string) (model.Evaluation, error)
	FindByStatus(ctx context.Context, status valueobject.EvaluationStatus) ([]model.Evaluation, error)
	FindDetails(ctx context.Context, evaluationID string) ([]model.CriterionScore, error)
}

// CriterionRepository manages the administrator-owned scoring weights.
type CriterionRepository interface {
	FindActive(ctx context.Context) ([]model.EvaluationCriterion, error)
	FindAll(ctx context.Context) ([]model.EvaluationCriterion, error)
	Update(ctx context.Context, criterion model.EvaluationCriterion) error
}

// CustomerDirectory reads the snapshots scoring depends on. Both lookups
// are required for correctness, so failures propagate as
// DependencyUnavailable instead of degrading.
type CustomerDirectory interface {
	GetCustomer(ctx context.Context, id string) (model.CustomerSnapshot, error)
	GetCreditHistory(ctx context.Context, customerID string) (model.CreditHistorySnapshot, error)
}
