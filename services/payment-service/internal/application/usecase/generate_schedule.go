package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/port"
)

// LoanDisbursed carries the slice of the disbursement event this service
// consumes. Unknown fields in the payload are ignored.
type LoanDisbursed struct {
	LoanID           string          `json:"loanId"`
	CustomerID       string          `json:"customerId"`
	Amount           decimal.Decimal `json:"amount"`
	MonthlyPayment   decimal.Decimal `json:"monthlyPayment"`
	TermMonths       int             `json:"termMonths"`
	InterestRate     decimal.Decimal `json:"interestRate"`
	DisbursementDate time.Time       `json:"disbursementDate"`
}

// GenerateScheduleUseCase expands a disbursed loan into its installment
// schedule.
type GenerateScheduleUseCase struct {
	schedules port.ScheduleRepository
	logger    *slog.Logger
}

func NewGenerateScheduleUseCase(schedules port.ScheduleRepository, logger *slog.Logger) *GenerateScheduleUseCase {
	return &GenerateScheduleUseCase{schedules: schedules, logger: logger}
}

// Execute generates and stores the schedule. Redelivered events are
// harmless: an existing schedule is left untouched.
func (uc *GenerateScheduleUseCase) Execute(ctx context.Context, evt LoanDisbursed) error {
	// 1. Skip loans that already have a schedule.
	existing, err := uc.schedules.FindByLoan(ctx, evt.LoanID)
	if err != nil {
		return fmt.Errorf("checking existing schedule for loan %s: %w", evt.LoanID, err)
	}
	if len(existing) > 0 {
		uc.logger.Info("schedule already exists, skipping",
			slog.String("loan_id", evt.LoanID),
			slog.Int("entries", len(existing)))
		return nil
	}

	// 2. Expand the disbursed principal into installments.
	entries, err := model.GenerateSchedule(
		evt.LoanID, evt.Amount, evt.MonthlyPayment,
		evt.InterestRate, evt.TermMonths, evt.DisbursementDate)
	if err != nil {
		return fmt.Errorf("generating schedule for loan %s: %w", evt.LoanID, err)
	}

	// 3. Persist. The repository ignores entries that raced in meanwhile.
	if err := uc.schedules.SaveAll(ctx, entries); err != nil {
		return fmt.Errorf("saving schedule for loan %s: %w", evt.LoanID, err)
	}

	uc.logger.Info("payment schedule generated",
		slog.String("loan_id", evt.LoanID),
		slog.Int("installments", len(entries)))
	return nil
}
