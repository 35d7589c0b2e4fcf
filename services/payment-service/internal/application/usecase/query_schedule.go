package usecase

import (
	"context"
	"time"

	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/port"
)

// QueryScheduleUseCase serves read-only schedule views. Overdue status is
// derived against the reference date on every call, nothing is stored.
type QueryScheduleUseCase struct {
	schedules port.ScheduleRepository
	now       func() time.Time
}

func NewQueryScheduleUseCase(schedules port.ScheduleRepository) *QueryScheduleUseCase {
	return &QueryScheduleUseCase{
		schedules: schedules,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ByLoan returns the full schedule of a loan in installment order.
func (uc *QueryScheduleUseCase) ByLoan(ctx context.Context, loanID string) ([]dto.ScheduleEntryResponse, error) {
	entries, err := uc.schedules.FindByLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return dto.ToScheduleEntryResponses(entries, uc.now()), nil
}

// Upcoming returns pending installments due within the next days.
func (uc *QueryScheduleUseCase) Upcoming(ctx context.Context, days int) ([]dto.ScheduleEntryResponse, error) {
	today := uc.now()
	entries, err := uc.schedules.FindPendingDueBetween(ctx, today, today.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}
	return dto.ToScheduleEntryResponses(entries, today), nil
}

// Overdue returns pending installments whose due date has passed.
func (uc *QueryScheduleUseCase) Overdue(ctx context.Context) ([]dto.ScheduleEntryResponse, error) {
	today := uc.now()
	entries, err := uc.schedules.FindPendingDueBefore(ctx, today)
	if err != nil {
		return nil, err
	}
	return dto.ToScheduleEntryResponses(entries, today), nil
}
