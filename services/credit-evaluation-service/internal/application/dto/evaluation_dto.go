package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/model"
)

type ManualEvaluationRequest struct {
	ManualScore   int    `json:"manualScore"`
	EvaluatorID   string `json:"evaluatorId"`
	EvaluatorName string `json:"evaluatorName"`
	Comments      string `json:"comments"`
}

type UpdateCriterionRequest struct {
	Weight decimal.Decimal `json:"weight"`
	Active bool            `json:"active"`
}

type EvaluationResponse struct {
	ID             string     `json:"id"`
	LoanID         string     `json:"loanId"`
	CustomerID     string     `json:"customerId"`
	AutomaticScore int        `json:"automaticScore"`
	ManualScore    *int       `json:"manualScore,omitempty"`
	FinalScore     int        `json:"finalScore"`
	Recommendation string     `json:"recommendation"`
	RiskLevel      string     `json:"riskLevel"`
	Status         string     `json:"status"`
	EvaluatorID    string     `json:"evaluatorId,omitempty"`
	EvaluatorName  string     `json:"evaluatorName,omitempty"`
	Comments       string     `json:"comments,omitempty"`
	EvaluationDate time.Time  `json:"evaluationDate"`
	CompletedDate  *time.Time `json:"completedDate,omitempty"`
}

type CriterionScoreResponse struct {
	CriterionID   string `json:"criterionId"`
	CriterionName string `json:"criterionName"`
	Score         int    `json:"score"`
}

type CriterionResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Weight decimal.Decimal `json:"weight"`
	Active bool            `json:"active"`
}

func ToEvaluationResponse(ev model.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:             ev.ID(),
		LoanID:         ev.LoanID(),
		CustomerID:     ev.CustomerID(),
		AutomaticScore: ev.AutomaticScore(),
		ManualScore:    ev.ManualScore(),
		FinalScore:     ev.FinalScore(),
		Recommendation: string(ev.Recommendation()),
		RiskLevel:      string(ev.RiskLevel()),
		Status:         ev.Status().String(),
		EvaluatorID:    ev.EvaluatorID(),
		EvaluatorName:  ev.EvaluatorName(),
		Comments:       ev.Comments(),
		EvaluationDate: ev.EvaluationDate(),
		CompletedDate:  ev.CompletedDate(),
	}
}

func ToEvaluationResponses(evs []model.Evaluation) []EvaluationResponse {
	out := make([]EvaluationResponse, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ToEvaluationResponse(ev))
	}
	return out
}

func ToCriterionScoreResponses(details []model.CriterionScore) []CriterionScoreResponse {
	out := make([]CriterionScoreResponse, 0, len(details))
	for _, d := range details {
		out = append(out, CriterionScoreResponse(d))
	}
	return out
}

func ToCriterionResponse(c model.EvaluationCriterion) CriterionResponse {
	return CriterionResponse{ID: c.ID, Name: c.Name, Weight: c.Weight, Active: c.Active}
}
