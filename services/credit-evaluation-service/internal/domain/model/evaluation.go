package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/event"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/valueobject"
)

// Evaluation is the immutable evaluation aggregate. There is at most one
// per loan; the scoring step mutates it once, and a manual review step at
// most once more. After APPROVED it never changes.
type Evaluation struct {
	id             string
	loanID         string
	customerID     string
	automaticScore int
	manualScore    *int
	finalScore     int
	recommendation valueobject.Recommendation
	riskLevel      valueobject.RiskLevel
	status         valueobject.EvaluationStatus
	evaluatorID    string
	evaluatorName  string
	comments       string
	evaluationDate time.Time
	completedDate  *time.Time
	version        int
	domainEvents   []event.DomainEvent
}

// NewEvaluation creates an evaluation from a freshly computed automatic
// score. APPROVE and REJECT verdicts complete immediately and record
// evaluation.completed; MANUAL_REVIEW parks the evaluation in IN_REVIEW.
func NewEvaluation(loanID, customerID string, automaticScore int, now time.Time) (Evaluation, error) {
	if loanID == "" || customerID == "" {
		return Evaluation{}, apperr.Validation("loan id and customer id are required")
	}
	if automaticScore < 0 || automaticScore > 100 {
		return Evaluation{}, apperr.Validation("automatic score must be within [0,100], got %d", automaticScore)
	}

	ev := Evaluation{
		id:             uuid.New().String(),
		loanID:         loanID,
		customerID:     customerID,
		automaticScore: automaticScore,
		finalScore:     automaticScore,
		recommendation: valueobject.RecommendationForScore(automaticScore),
		riskLevel:      valueobject.RiskForScore(automaticScore),
		evaluationDate: now,
		version:        1,
	}

	if ev.recommendation == valueobject.RecommendationManualReview {
		ev.status = valueobject.EvaluationStatusInReview
		return ev, nil
	}

	ev.status = valueobject.EvaluationStatusApproved
	ev.completedDate = &now
	ev.domainEvents = append(ev.domainEvents, event.NewEvaluationCompleted(
		ev.id, loanID, customerID, ev.finalScore, string(ev.recommendation), now,
	))
	return ev, nil
}

// ReconstructEvaluation rebuilds an Evaluation from persistence.
func ReconstructEvaluation(
	id, loanID, customerID string,
	automaticScore int, manualScore *int, finalScore int,
	recommendation valueobject.Recommendation,
	riskLevel valueobject.RiskLevel,
	status valueobject.EvaluationStatus,
	evaluatorID, evaluatorName, comments string,
	evaluationDate time.Time,
	completedDate *time.Time,
	version int,
) Evaluation {
	return Evaluation{
		id:             id,
		loanID:         loanID,
		customerID:     customerID,
		automaticScore: automaticScore,
		manualScore:    manualScore,
		finalScore:     finalScore,
		recommendation: recommendation,
		riskLevel:      riskLevel,
		status:         status,
		evaluatorID:    evaluatorID,
		evaluatorName:  evaluatorName,
		comments:       comments,
		evaluationDate: evaluationDate,
		completedDate:  completedDate,
		version:        version,
	}
}

// CompleteManual blends a reviewer's score into the automatic one. The
// final score is the integer floor-average of the two; recommendation and
// risk are recomputed from the blend. Legal only from IN_REVIEW.
func (e Evaluation) CompleteManual(manualScore int, evaluatorID, evaluatorName, comments string, now time.Time) (Evaluation, error) {
	if !e.status.Equal(valueobject.EvaluationStatusInReview) {
		return e, apperr.Conflict("only in-review evaluations can be completed manually, evaluation %s is %s", e.id, e.status)
	}
	if manualScore < 0 || manualScore > 100 {
		return e, apperr.Validation("manual score must be within [0,100], got %d", manualScore)
	}

	next := e
	score := manualScore
	next.manualScore = &score
	next.finalScore = (e.automaticScore + manualScore) / 2
	next.recommendation = valueobject.RecommendationForScore(next.finalScore)
	next.riskLevel = valueobject.RiskForScore(next.finalScore)
	next.status = valueobject.EvaluationStatusApproved
	next.evaluatorID = evaluatorID
	next.evaluatorName = evaluatorName
	next.comments = comments
	next.completedDate = &now
	next.domainEvents = append([]event.DomainEvent(nil), e.domainEvents...)
	next.domainEvents = append(next.domainEvents, event.NewEvaluationCompleted(
		e.id, e.loanID, e.customerID, next.finalScore, string(next.recommendation), now,
	))
	return next, nil
}

func (e Evaluation) ID() string                                 { return e.id }
func (e Evaluation) LoanID() string                             { return e.loanID }
func (e Evaluation) CustomerID() string                         { return e.customerID }
func (e Evaluation) AutomaticScore() int                        { return e.automaticScore }
func (e Evaluation) ManualScore() *int                          { return e.manualScore }
func (e Evaluation) FinalScore() int                            { return e.finalScore }
func (e Evaluation) Recommendation() valueobject.Recommendation { return e.recommendation }
func (e Evaluation) RiskLevel() valueobject.RiskLevel           { return e.riskLevel }
func (e Evaluation) Status() valueobject.EvaluationStatus       { return e.status }
func (e Evaluation) EvaluatorID() string                        { return e.evaluatorID }
func (e Evaluation) EvaluatorName() string                      { return e.evaluatorName }
func (e Evaluation) Comments() string                           { return e.comments }
func (e Evaluation) EvaluationDate() time.Time                  { return e.evaluationDate }
func (e Evaluation) CompletedDate() *time.Time                  { return e.completedDate }
func (e Evaluation) Version() int                               { return e.version }
func (e Evaluation) DomainEvents() []event.DomainEvent          { return e.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (e Evaluation) ClearEvents() Evaluation {
	next := e
	next.domainEvents = nil
	return next
}
