package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/application/usecase"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/model"
)

func disbursedEvent() usecase.LoanDisbursed {
	return usecase.LoanDisbursed{
		LoanID:           "loan-1",
		CustomerID:       "cust-1",
		Amount:           dec("10000"),
		MonthlyPayment:   dec("888.49"),
		TermMonths:       12,
		InterestRate:     dec("12.0"),
		DisbursementDate: time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerateScheduleUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("generates and stores the full schedule", func(t *testing.T) {
		var saved []model.ScheduleEntry
		schedules := &mockScheduleRepository{
			findByLoanFunc: func(_ context.Context, _ string) ([]model.ScheduleEntry, error) {
				return nil, nil
			},
			saveAllFunc: func(_ context.Context, entries []model.ScheduleEntry) error {
				saved = entries
				return nil
			},
		}

		uc := usecase.NewGenerateScheduleUseCase(schedules, discardLogger())
		require.NoError(t, uc.Execute(ctx, disbursedEvent()))

		require.Len(t, saved, 12)
		assert.Equal(t, "loan-1", saved[0].LoanID)
		assert.True(t, saved[11].RemainingBalance.IsZero())

		principalSum := decimal.Zero
		for _, e := range saved {
			principalSum = principalSum.Add(e.Principal)
		}
		assert.True(t, principalSum.Equal(dec("10000")),
			"schedule must amortize the disbursed principal, got %s", principalSum)
	})

	t.Run("redelivered event leaves an existing schedule untouched", func(t *testing.T) {
		schedules := &mockScheduleRepository{
			findByLoanFunc: func(_ context.Context, _ string) ([]model.ScheduleEntry, error) {
				return []model.ScheduleEntry{{LoanID: "loan-1", InstallmentNumber: 1}}, nil
			},
			saveAllFunc: func(_ context.Context, _ []model.ScheduleEntry) error {
				t.Fatal("must not overwrite an existing schedule")
				return nil
			},
		}

		uc := usecase.NewGenerateScheduleUseCase(schedules, discardLogger())
		require.NoError(t, uc.Execute(ctx, disbursedEvent()))
	})

	t.Run("rejects a malformed disbursement", func(t *testing.T) {
		schedules := &mockScheduleRepository{
			findByLoanFunc: func(_ context.Context, _ string) ([]model.ScheduleEntry, error) {
				return nil, nil
			},
		}

		evt := disbursedEvent()
		evt.TermMonths = 0
		uc := usecase.NewGenerateScheduleUseCase(schedules, discardLogger())
		assert.Error(t, uc.Execute(ctx, evt))
	})
}
