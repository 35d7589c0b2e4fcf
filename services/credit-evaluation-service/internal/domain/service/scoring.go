package service

import (
	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/model"
)

// scorer produces a sub-score in [0,100] for one criterion.
type scorer func(customer model.CustomerSnapshot, history model.CreditHistorySnapshot) int

// neutralScore is used for criterion names without a registered scorer, so
// an administrator adding a new criterion cannot break scoring.
const neutralScore = 50

// ScoringEngine computes automatic credit scores. It is a pure function of
// its inputs; persistence of the audit detail rows is the caller's job.
type ScoringEngine struct {
	scorers map[string]scorer
}

// NewScoringEngine builds the engine with the standard scoring functions.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{
		scorers: map[string]scorer{
			"Monthly Income": func(c model.CustomerSnapshot, _ model.CreditHistorySnapshot) int {
				return scoreIncome(c.MonthlyIncome)
			},
			"Credit History": func(_ model.CustomerSnapshot, h model.CreditHistorySnapshot) int {
				return scoreCreditHistory(h)
			},
			"Payment Capacity": func(c model.CustomerSnapshot, h model.CreditHistorySnapshot) int {
				return scorePaymentCapacity(c.MonthlyIncome, h.TotalDebt)
			},
			"Work Experience": func(c model.CustomerSnapshot, _ model.CreditHistorySnapshot) int {
				return scoreWorkExperience(c.WorkExperienceYears)
			},
		},
	}
}

// Score applies every criterion and returns the truncated weighted total
// plus one audit row per criterion. Each weighted term is rounded to 2
// decimals half-up before accumulation.
func (e *ScoringEngine) Score(
	criteria []model.EvaluationCriterion,
	customer model.CustomerSnapshot,
	history model.CreditHistorySnapshot,
) (int, []model.CriterionScore) {
	total := decimal.Zero
	details := make([]model.CriterionScore, 0, len(criteria))

	for _, criterion := range criteria {
		score := neutralScore
		if fn, ok := e.scorers[criterion.Name]; ok {
			score = fn(customer, history)
		}

		weighted := decimal.NewFromInt(int64(score)).
			Mul(criterion.Weight).
			DivRound(decimal.NewFromInt(100), 2)
		total = total.Add(weighted)

		details = append(details, model.CriterionScore{
			CriterionID:   criterion.ID,
			CriterionName: criterion.Name,
			Score:         score,
		})
	}

	return int(total.IntPart()), details
}

func scoreIncome(income decimal.NullDecimal) int {
	if !income.Valid {
		return 0
	}
	switch {
	case income.Decimal.GreaterThanOrEqual(decimal.NewFromInt(10000)):
		return 100
	case income.Decimal.GreaterThanOrEqual(decimal.NewFromInt(5000)):
		return 70
	case income.Decimal.GreaterThanOrEqual(decimal.NewFromInt(3000)):
		return 50
	case income.Decimal.GreaterThanOrEqual(decimal.NewFromInt(1500)):
		return 30
	default:
		return 10
	}
}

func scoreCreditHistory(h model.CreditHistorySnapshot) int {
	score := 50

	score += min(h.CompletedLoans*15, 30)
	score -= h.DefaultedLoans * 25

	if h.CreditScore != nil {
		switch {
		case *h.CreditScore >= 750:
			score += 20
		case *h.CreditScore >= 650:
			score += 10
		case *h.CreditScore < 550:
			score -= 20
		}
	}

	return max(0, min(100, score))
}

func scorePaymentCapacity(income decimal.NullDecimal, totalDebt decimal.Decimal) int {
	if !income.Valid || income.Decimal.IsZero() {
		return 0
	}

	debtToIncome := totalDebt.DivRound(income.Decimal, 4)
	switch {
	case debtToIncome.LessThanOrEqual(decimal.NewFromFloat(0.30)):
		return 100
	case debtToIncome.LessThanOrEqual(decimal.NewFromFloat(0.40)):
		return 70
	case debtToIncome.LessThanOrEqual(decimal.NewFromFloat(0.50)):
		return 40
	case debtToIncome.LessThanOrEqual(decimal.NewFromFloat(0.60)):
		return 20
	default:
		return 0
	}
}

func scoreWorkExperience(years *int) int {
	if years == nil {
		return 0
	}
	switch {
	case *years >= 10:
		return 100
	case *years >= 5:
		return 75
	case *years >= 3:
		return 50
	case *years >= 1:
		return 25
	default:
		return 10
	}
}
