package model

import (
	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
)

// LoanProduct is reference data describing one loan offering. The interest
// rate is copied onto the loan at application time and frozen there.
type LoanProduct struct {
	ID                 string
	Name               string
	MinAmount          decimal.Decimal
	MaxAmount          decimal.Decimal
	MinTermMonths      int
	MaxTermMonths      int
	InterestRate       decimal.Decimal // annual, percent
	RequiresCollateral bool
	Active             bool
}

// ValidateRequest checks the requested amount and term against the product
// ranges. Violations are validation errors, never silently clamped.
func (p LoanProduct) ValidateRequest(amount decimal.Decimal, termMonths int) error {
	if !p.Active {
		return apperr.Validation("loan product %s is not active", p.Name)
	}
	if amount.LessThan(p.MinAmount) || amount.GreaterThan(p.MaxAmount) {
		return apperr.Validation("amount %s outside allowed range [%s, %s]",
			amount, p.MinAmount, p.MaxAmount)
	}
	if termMonths < p.MinTermMonths || termMonths > p.MaxTermMonths {
		return apperr.Validation("term %d months outside allowed range [%d, %d]",
			termMonths, p.MinTermMonths, p.MaxTermMonths)
	}
	return nil
}
