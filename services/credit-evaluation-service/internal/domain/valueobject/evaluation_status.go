package valueobject

import "github.com/PatriickRM/loan-banking-system/pkg/apperr"

// EvaluationStatus tracks an evaluation through scoring and manual review.
// APPROVED is the completed terminal state for every outcome, including a
// REJECT recommendation: the evaluation itself finished, the verdict lives
// in the recommendation.
type EvaluationStatus struct {
	value string
}

var (
	EvaluationStatusPending  = EvaluationStatus{"PENDING"}
	EvaluationStatusInReview = EvaluationStatus{"IN_REVIEW"}
	EvaluationStatusApproved = EvaluationStatus{"APPROVED"}
)

var validEvaluationStatuses = map[string]EvaluationStatus{
	"PENDING":   EvaluationStatusPending,
	"IN_REVIEW": EvaluationStatusInReview,
	"APPROVED":  EvaluationStatusApproved,
}

// NewEvaluationStatus parses a stored status string.
func NewEvaluationStatus(value string) (EvaluationStatus, error) {
	s, ok := validEvaluationStatuses[value]
	if !ok {
		return EvaluationStatus{}, apperr.Validation("invalid evaluation status %q", value)
	}
	return s, nil
}

// String returns the string representation of the status.
func (s EvaluationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s EvaluationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s EvaluationStatus) Equal(o EvaluationStatus) bool { return s.value == o.value }
