package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/application/usecase"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/port"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/valueobject"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func pendingEntry(dueDate time.Time) model.ScheduleEntry {
	return model.ScheduleEntry{
		ID:                "entry-1",
		LoanID:            "loan-1",
		InstallmentNumber: 2,
		Amount:            dec("888.49"),
		Principal:         dec("781.87"),
		Interest:          dec("106.62"),
		RemainingBalance:  dec("9880.01"),
		DueDate:           dueDate,
		Status:            valueobject.ScheduleStatusPending,
	}
}

func TestProcessPaymentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("records a payment against the earliest pending installment", func(t *testing.T) {
		entry := pendingEntry(time.Now().UTC().AddDate(0, 0, 7))
		var recorded model.Payment
		schedules := &mockScheduleRepository{
			findFirstPendingFunc: func(_ context.Context, loanID string) (model.ScheduleEntry, error) {
				assert.Equal(t, "loan-1", loanID)
				return entry, nil
			},
		}
		payments := &mockPaymentRepository{
			recordFunc: func(_ context.Context, p model.Payment) error {
				recorded = p
				return nil
			},
		}
		loans := &mockLoanDirectory{
			getLoanFunc: func(_ context.Context, id string) (port.LoanSummary, error) {
				return port.LoanSummary{ID: id, CustomerID: "cust-9"}, nil
			},
		}

		uc := usecase.NewProcessPaymentUseCase(schedules, payments, loans, discardLogger())
		resp, err := uc.Execute(ctx, dto.ProcessPaymentRequest{
			LoanID:        "loan-1",
			Amount:        dec("888.49"),
			PaymentMethod: "BANK_TRANSFER",
		})
		require.NoError(t, err)

		assert.Equal(t, "cust-9", resp.CustomerID)
		assert.Equal(t, 2, resp.InstallmentNumber)
		assert.True(t, resp.LateFee.IsZero())
		require.Len(t, recorded.DomainEvents(), 1)
	})

	t.Run("charges the late fee when paying past the due date", func(t *testing.T) {
		entry := pendingEntry(time.Now().UTC().AddDate(0, 0, -10))
		schedules := &mockScheduleRepository{
			findFirstPendingFunc: func(_ context.Context, _ string) (model.ScheduleEntry, error) {
				return entry, nil
			},
		}
		payments := &mockPaymentRepository{
			recordFunc: func(_ context.Context, _ model.Payment) error { return nil },
		}
		loans := &mockLoanDirectory{
			getLoanFunc: func(_ context.Context, id string) (port.LoanSummary, error) {
				return port.LoanSummary{ID: id, CustomerID: "cust-9"}, nil
			},
		}

		uc := usecase.NewProcessPaymentUseCase(schedules, payments, loans, discardLogger())
		resp, err := uc.Execute(ctx, dto.ProcessPaymentRequest{LoanID: "loan-1", Amount: dec("888.49")})
		require.NoError(t, err)
		assert.True(t, resp.LateFee.Equal(dec("44.42")))
	})

	t.Run("rejects an insufficient amount without recording", func(t *testing.T) {
		entry := pendingEntry(time.Now().UTC().AddDate(0, 0, 7))
		schedules := &mockScheduleRepository{
			findFirstPendingFunc: func(_ context.Context, _ string) (model.ScheduleEntry, error) {
				return entry, nil
			},
		}
		payments := &mockPaymentRepository{
			recordFunc: func(_ context.Context, _ model.Payment) error {
				t.Fatal("must not record a short payment")
				return nil
			},
		}
		loans := &mockLoanDirectory{
			getLoanFunc: func(_ context.Context, id string) (port.LoanSummary, error) {
				return port.LoanSummary{ID: id, CustomerID: "cust-9"}, nil
			},
		}

		uc := usecase.NewProcessPaymentUseCase(schedules, payments, loans, discardLogger())
		_, err := uc.Execute(ctx, dto.ProcessPaymentRequest{LoanID: "loan-1", Amount: dec("100.00")})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("surfaces not found when nothing is pending", func(t *testing.T) {
		schedules := &mockScheduleRepository{
			findFirstPendingFunc: func(_ context.Context, _ string) (model.ScheduleEntry, error) {
				return model.ScheduleEntry{}, apperr.NotFound("no pending installments for loan loan-1")
			},
		}

		uc := usecase.NewProcessPaymentUseCase(schedules, &mockPaymentRepository{}, &mockLoanDirectory{}, discardLogger())
		_, err := uc.Execute(ctx, dto.ProcessPaymentRequest{LoanID: "loan-1", Amount: dec("888.49")})
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("fails when the loan service is unavailable", func(t *testing.T) {
		entry := pendingEntry(time.Now().UTC().AddDate(0, 0, 7))
		schedules := &mockScheduleRepository{
			findFirstPendingFunc: func(_ context.Context, _ string) (model.ScheduleEntry, error) {
				return entry, nil
			},
		}
		loans := &mockLoanDirectory{
			getLoanFunc: func(_ context.Context, _ string) (port.LoanSummary, error) {
				return port.LoanSummary{}, apperr.DependencyUnavailable("loan service unavailable")
			},
		}

		uc := usecase.NewProcessPaymentUseCase(schedules, &mockPaymentRepository{}, loans, discardLogger())
		_, err := uc.Execute(ctx, dto.ProcessPaymentRequest{LoanID: "loan-1", Amount: dec("888.49")})
		assert.True(t, errors.Is(err, apperr.ErrDependencyUnavailable))
	})
}
