package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/event"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/port"
)

// ScanOverdueUseCase sweeps pending installments past their due date and
// publishes an overdue notice for each. The scan reads state and emits,
// it never transitions schedule entries; an unpaid installment is
// reported again on every run.
type ScanOverdueUseCase struct {
	schedules port.ScheduleRepository
	loans     port.LoanDirectory
	publisher port.OverduePublisher
	now       func() time.Time
	logger    *slog.Logger
}

func NewScanOverdueUseCase(
	schedules port.ScheduleRepository,
	loans port.LoanDirectory,
	publisher port.OverduePublisher,
	logger *slog.Logger,
) *ScanOverdueUseCase {
	return &ScanOverdueUseCase{
		schedules: schedules,
		loans:     loans,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

// Execute runs one sweep. A failure on one installment is logged and the
// sweep moves on, one broken loan must not silence notices for the rest.
func (uc *ScanOverdueUseCase) Execute(ctx context.Context) error {
	today := uc.now()

	entries, err := uc.schedules.FindPendingDueBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("loading overdue installments: %w", err)
	}

	published := 0
	for _, entry := range entries {
		loan, err := uc.loans.GetLoan(ctx, entry.LoanID)
		if err != nil {
			uc.logger.Warn("skipping overdue installment, loan lookup failed",
				slog.String("loan_id", entry.LoanID),
				slog.Int("installment", entry.InstallmentNumber),
				slog.String("error", err.Error()))
			continue
		}

		notice := event.NewPaymentOverdue(entry.ID, entry.LoanID, loan.CustomerID,
			entry.InstallmentNumber, entry.Amount, entry.DueDate, entry.DaysOverdue(today))
		if err := uc.publisher.PublishOverdue(ctx, notice); err != nil {
			uc.logger.Warn("failed to publish overdue notice",
				slog.String("loan_id", entry.LoanID),
				slog.Int("installment", entry.InstallmentNumber),
				slog.String("error", err.Error()))
			continue
		}
		published++
	}

	uc.logger.Info("overdue scan finished",
		slog.Int("overdue", len(entries)),
		slog.Int("published", published))
	return nil
}
