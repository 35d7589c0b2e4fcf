package model

import "github.com/shopspring/decimal"

// CustomerSnapshot is the read-only projection of a customer the scoring
// engine consumes. Nullable attributes stay nullable: a missing income and
// a zero income score differently.
type CustomerSnapshot struct {
	ID                  string
	FirstName           string
	LastName            string
	MonthlyIncome       decimal.NullDecimal
	WorkExperienceYears *int
}

// CreditHistorySnapshot is the read-only credit record projection.
type CreditHistorySnapshot struct {
	CustomerID     string
	CreditScore    *int
	TotalDebt      decimal.Decimal
	ActiveLoans    int
	CompletedLoans int
	DefaultedLoans int
}
