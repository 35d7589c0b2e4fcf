package event

import (
	"time"

	"github.com/PatriickRM/loan-banking-system/pkg/events"
)

// DomainEvent aliases the shared envelope interface.
type DomainEvent = events.DomainEvent

// TopicEvaluationCompleted carries completed evaluations back to the loan
// workflow. Keyed by loan id so it stays ordered with the loan's saga.
const TopicEvaluationCompleted = "evaluation.completed"

// EvaluationCompleted is published when an evaluation reaches its terminal
// state, whether automatically or after manual review.
type EvaluationCompleted struct {
	events.BaseEvent
	EvaluationID   string    `json:"evaluationId"`
	LoanID         string    `json:"loanId"`
	CustomerID     string    `json:"customerId"`
	FinalScore     int       `json:"finalScore"`
	Recommendation string    `json:"recommendation"`
	CompletedAt    time.Time `json:"completedAt"`
}

func NewEvaluationCompleted(evaluationID, loanID, customerID string, finalScore int, recommendation string, completedAt time.Time) EvaluationCompleted {
	return EvaluationCompleted{
		BaseEvent:      events.NewBaseEvent(TopicEvaluationCompleted, "Evaluation", loanID),
		EvaluationID:   evaluationID,
		LoanID:         loanID,
		CustomerID:     customerID,
		FinalScore:     finalScore,
		Recommendation: recommendation,
		CompletedAt:    completedAt,
	}
}
