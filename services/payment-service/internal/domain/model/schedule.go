package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/valueobject"
)

// ScheduleEntry is one installment of a loan's repayment plan.
type ScheduleEntry struct {
	ID                string
	LoanID            string
	InstallmentNumber int
	Amount            decimal.Decimal
	Principal         decimal.Decimal
	Interest          decimal.Decimal
	RemainingBalance  decimal.Decimal
	DueDate           time.Time
	Status            valueobject.ScheduleStatus
}

// IsOverdue derives the overdue condition at read time: a pending entry
// past its due date. No stored transition backs it, so a scan re-run sees
// the same answer.
func (e ScheduleEntry) IsOverdue(today time.Time) bool {
	return e.Status.Equal(valueobject.ScheduleStatusPending) && e.DueDate.Before(dateOnly(today))
}

// DaysOverdue counts whole days between the due date and today.
func (e ScheduleEntry) DaysOverdue(today time.Time) int {
	return int(dateOnly(today).Sub(dateOnly(e.DueDate)).Hours() / 24)
}

// DaysUntilDue counts whole days from today to the due date, negative
// once the due date has passed.
func (e ScheduleEntry) DaysUntilDue(today time.Time) int {
	return int(dateOnly(e.DueDate).Sub(dateOnly(today)).Hours() / 24)
}

// GenerateSchedule expands a disbursement into termMonths installments. The
// running balance opens at the disbursed principal; each step charges
// interest on it (2 decimals half-up) and the fixed installment's remainder
// amortizes principal. The final installment is forced to clear the balance
// exactly, absorbing the rounding drift into its recomputed amount, so the
// entries' principal columns always sum to the disbursed amount.
func GenerateSchedule(
	loanID string,
	amount, monthlyPayment, annualRatePercent decimal.Decimal,
	termMonths int,
	disbursementDate time.Time,
) ([]ScheduleEntry, error) {
	if loanID == "" {
		return nil, apperr.Validation("loan id is required")
	}
	if termMonths <= 0 {
		return nil, apperr.Validation("term months must be positive, got %d", termMonths)
	}
	if amount.LessThanOrEqual(decimal.Zero) || monthlyPayment.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.Validation("amount and monthly payment must be positive")
	}

	monthlyRate := annualRatePercent.
		DivRound(decimal.NewFromInt(100), 6).
		DivRound(decimal.NewFromInt(12), 6)

	balance := amount
	installment := monthlyPayment
	start := dateOnly(disbursementDate)

	entries := make([]ScheduleEntry, 0, termMonths)
	for i := 1; i <= termMonths; i++ {
		interest := balance.Mul(monthlyRate).Round(2)
		principal := installment.Sub(interest)

		if i == termMonths {
			principal = balance
			installment = principal.Add(interest)
		}

		balance = balance.Sub(principal)
		if balance.IsNegative() {
			balance = decimal.Zero
		}

		entries = append(entries, ScheduleEntry{
			ID:                uuid.New().String(),
			LoanID:            loanID,
			InstallmentNumber: i,
			Amount:            installment,
			Principal:         principal,
			Interest:          interest,
			RemainingBalance:  balance,
			DueDate:           addMonthsClamped(start, i),
			Status:            valueobject.ScheduleStatusPending,
		})
	}
	return entries, nil
}

// addMonthsClamped advances by whole months, clamping to the last day of the
// target month instead of letting Jan 31 + 1 month normalize to Mar 3.
func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
