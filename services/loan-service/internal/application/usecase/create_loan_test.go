package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/application/usecase"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/event"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/port"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProduct() model.LoanProduct {
	return model.LoanProduct{
		ID:            "product-001",
		Name:          "Personal Loan",
		MinAmount:     decimal.NewFromInt(1000),
		MaxAmount:     decimal.NewFromInt(50000),
		MinTermMonths: 6,
		MaxTermMonths: 60,
		InterestRate:  decimal.NewFromInt(12),
		Active:        true,
	}
}

func TestCreateLoanUseCase_Execute(t *testing.T) {
	req := dto.CreateLoanRequest{
		CustomerID: "customer-001",
		ProductID:  "product-001",
		Amount:     decimal.NewFromInt(10000),
		TermMonths: 12,
		Purpose:    "home improvement",
	}

	t.Run("creates a pending loan", func(t *testing.T) {
		var saved model.Loan
		loanRepo := &mockLoanRepository{
			saveFunc: func(_ context.Context, loan model.Loan) error {
				saved = loan
				return nil
			},
		}
		productRepo := &mockProductRepository{
			findByIDFunc: func(_ context.Context, id string) (model.LoanProduct, error) {
				assert.Equal(t, "product-001", id)
				return testProduct(), nil
			},
		}
		customers := &mockCustomerDirectory{
			getCustomerFunc: func(_ context.Context, id string) (port.CustomerSummary, error) {
				return port.CustomerSummary{ID: id, FirstName: "Maria", LastName: "Lopez"}, nil
			},
		}

		uc := usecase.NewCreateLoanUseCase(loanRepo, productRepo, customers, discardLogger())
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, "Maria Lopez", resp.CustomerName)
		assert.Equal(t, "888.49", resp.MonthlyPayment.StringFixed(2))

		require.Len(t, saved.DomainEvents(), 1)
		_, ok := saved.DomainEvents()[0].(event.LoanCreated)
		assert.True(t, ok)
	})

	t.Run("degrades customer name when directory is unavailable", func(t *testing.T) {
		loanRepo := &mockLoanRepository{
			saveFunc: func(_ context.Context, _ model.Loan) error { return nil },
		}
		productRepo := &mockProductRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.LoanProduct, error) {
				return testProduct(), nil
			},
		}
		customers := &mockCustomerDirectory{
			getCustomerFunc: func(_ context.Context, _ string) (port.CustomerSummary, error) {
				return port.CustomerSummary{}, apperr.DependencyUnavailable("customer service timeout")
			},
		}

		uc := usecase.NewCreateLoanUseCase(loanRepo, productRepo, customers, discardLogger())
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "N/A — service unavailable", resp.CustomerName)
	})

	t.Run("fails when customer does not exist", func(t *testing.T) {
		loanRepo := &mockLoanRepository{}
		productRepo := &mockProductRepository{}
		customers := &mockCustomerDirectory{
			getCustomerFunc: func(_ context.Context, id string) (port.CustomerSummary, error) {
				return port.CustomerSummary{}, apperr.NotFound("customer %s not found", id)
			},
		}

		uc := usecase.NewCreateLoanUseCase(loanRepo, productRepo, customers, discardLogger())
		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("rejects out-of-range amount without saving", func(t *testing.T) {
		saveCalled := false
		loanRepo := &mockLoanRepository{
			saveFunc: func(_ context.Context, _ model.Loan) error {
				saveCalled = true
				return nil
			},
		}
		productRepo := &mockProductRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.LoanProduct, error) {
				return testProduct(), nil
			},
		}
		customers := &mockCustomerDirectory{
			getCustomerFunc: func(_ context.Context, id string) (port.CustomerSummary, error) {
				return port.CustomerSummary{ID: id}, nil
			},
		}

		outOfRange := req
		outOfRange.Amount = decimal.NewFromInt(100000)

		uc := usecase.NewCreateLoanUseCase(loanRepo, productRepo, customers, discardLogger())
		_, err := uc.Execute(context.Background(), outOfRange)

		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.False(t, saveCalled)
	})
}

func TestApplyPaymentUseCase_Execute(t *testing.T) {
	activeLoan := func(t *testing.T) model.Loan {
		t.Helper()
		loan, err := model.NewLoan("customer-001", testProduct(), decimal.NewFromInt(10000), 12, "car", time.Now().UTC())
		require.NoError(t, err)
		loan, err = loan.Approve(decimal.NewFromInt(10000), "analyst-7", time.Now().UTC())
		require.NoError(t, err)
		loan, err = loan.Disburse(time.Now().UTC())
		require.NoError(t, err)
		return loan.ClearEvents()
	}

	evt := usecase.PaymentReceived{
		PaymentID:     "payment-001",
		LoanID:        "loan-001",
		PrincipalPaid: decimal.NewFromInt(800),
	}

	t.Run("applies principal and persists with dedup key", func(t *testing.T) {
		loan := activeLoan(t)
		var savedPaymentID string
		var saved model.Loan
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Loan, error) {
				return loan, nil
			},
			saveAppliedPaymentFunc: func(_ context.Context, l model.Loan, paymentID string) (bool, error) {
				saved = l
				savedPaymentID = paymentID
				return true, nil
			},
		}

		uc := usecase.NewApplyPaymentUseCase(loanRepo, discardLogger())
		err := uc.Execute(context.Background(), evt)

		require.NoError(t, err)
		assert.Equal(t, "payment-001", savedPaymentID)
		expected := loan.OutstandingBalance().Sub(decimal.NewFromInt(800))
		assert.True(t, expected.Equal(saved.OutstandingBalance()))
	})

	t.Run("duplicate payment id is skipped", func(t *testing.T) {
		loan := activeLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Loan, error) {
				return loan, nil
			},
			saveAppliedPaymentFunc: func(_ context.Context, _ model.Loan, _ string) (bool, error) {
				return false, nil
			},
		}

		uc := usecase.NewApplyPaymentUseCase(loanRepo, discardLogger())
		err := uc.Execute(context.Background(), evt)

		require.NoError(t, err)
	})
}
