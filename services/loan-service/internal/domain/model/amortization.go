package model

import (
	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
	decimalTwelve  = decimal.NewFromInt(12)
)

// Amortization holds the fixed-installment (French system) figures for a loan.
type Amortization struct {
	MonthlyPayment decimal.Decimal
	TotalAmount    decimal.Decimal
}

// MonthlyRate converts an annual percentage rate to a monthly decimal rate
// with 6-decimal half-up rounding at each step. Schedule generation depends
// on this exact rounding, so it lives in one place.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.
		DivRound(decimalHundred, 6).
		DivRound(decimalTwelve, 6)
}

// Amortize computes the fixed monthly installment
//
//	M = P * r(1+r)^n / ((1+r)^n - 1)
//
// rounded to 2 decimals half-up, and the total repayable amount M * n.
func Amortize(principal decimal.Decimal, annualRatePercent decimal.Decimal, termMonths int) (Amortization, error) {
	if termMonths <= 0 {
		return Amortization{}, apperr.Validation("term must be positive, got %d", termMonths)
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return Amortization{}, apperr.Validation("principal must be positive, got %s", principal)
	}

	months := decimal.NewFromInt(int64(termMonths))
	rate := MonthlyRate(annualRatePercent)

	var monthly decimal.Decimal
	if rate.IsZero() {
		monthly = principal.DivRound(months, 2)
	} else {
		power := decimalOne.Add(rate).Pow(months)
		monthly = principal.
			Mul(rate.Mul(power)).
			DivRound(power.Sub(decimalOne), 2)
	}

	return Amortization{
		MonthlyPayment: monthly,
		TotalAmount:    monthly.Mul(months),
	}, nil
}
