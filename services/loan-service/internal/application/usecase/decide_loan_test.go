package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/application/usecase"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/model"
)

func pendingLoan(t *testing.T) model.Loan {
	t.Helper()
	loan, err := model.NewLoan("customer-001", testProduct(), decimal.NewFromInt(10000), 12, "car", time.Now().UTC())
	require.NoError(t, err)
	return loan.ClearEvents()
}

func TestDecideLoanUseCase(t *testing.T) {
	t.Run("approve re-amortizes and saves", func(t *testing.T) {
		loan := pendingLoan(t)
		var saved model.Loan
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Loan, error) { return loan, nil },
			saveFunc: func(_ context.Context, l model.Loan) error {
				saved = l
				return nil
			},
		}

		uc := usecase.NewDecideLoanUseCase(loanRepo)
		resp, err := uc.Approve(context.Background(), loan.ID(), dto.ApproveLoanRequest{
			ApprovedAmount: decimal.NewFromInt(8000),
			EvaluatedBy:    "analyst-7",
		})

		require.NoError(t, err)
		assert.Equal(t, "APPROVED", resp.Status)
		assert.Equal(t, "710.79", resp.MonthlyPayment.StringFixed(2))
		assert.Len(t, saved.DomainEvents(), 1)
	})

	t.Run("reject records the reason", func(t *testing.T) {
		loan := pendingLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Loan, error) { return loan, nil },
			saveFunc:     func(_ context.Context, _ model.Loan) error { return nil },
		}

		uc := usecase.NewDecideLoanUseCase(loanRepo)
		resp, err := uc.Reject(context.Background(), loan.ID(), dto.RejectLoanRequest{
			Reason:      "credit score below threshold",
			EvaluatedBy: "analyst-7",
		})

		require.NoError(t, err)
		assert.Equal(t, "REJECTED", resp.Status)
		assert.Equal(t, "credit score below threshold", resp.RejectionReason)
	})

	t.Run("disburse requires approval first", func(t *testing.T) {
		loan := pendingLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Loan, error) { return loan, nil },
		}

		uc := usecase.NewDecideLoanUseCase(loanRepo)
		_, err := uc.Disburse(context.Background(), loan.ID())

		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("cancel withdraws a pending application", func(t *testing.T) {
		loan := pendingLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Loan, error) { return loan, nil },
			saveFunc:     func(_ context.Context, _ model.Loan) error { return nil },
		}

		uc := usecase.NewDecideLoanUseCase(loanRepo)
		resp, err := uc.Cancel(context.Background(), loan.ID())

		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", resp.Status)
	})
}
