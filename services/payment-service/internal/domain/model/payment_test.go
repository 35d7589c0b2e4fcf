package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/event"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/valueobject"
)

func pendingEntry() model.ScheduleEntry {
	return model.ScheduleEntry{
		ID:                "entry-1",
		LoanID:            "loan-1",
		InstallmentNumber: 3,
		Amount:            dec("888.49"),
		Principal:         dec("781.87"),
		Interest:          dec("106.62"),
		RemainingBalance:  dec("9880.01"),
		DueDate:           time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC),
		Status:            valueobject.ScheduleStatusPending,
	}
}

func TestNewPayment(t *testing.T) {
	t.Run("settles an installment on time without late fee", func(t *testing.T) {
		paidAt := time.Date(2026, time.April, 14, 16, 0, 0, 0, time.UTC)

		p, err := model.NewPayment(pendingEntry(), "cust-1", dec("888.49"),
			"BANK_TRANSFER", "REF-001", "", "teller-7", paidAt)
		require.NoError(t, err)

		assert.Equal(t, "loan-1", p.LoanID)
		assert.Equal(t, "cust-1", p.CustomerID)
		assert.Equal(t, "entry-1", p.ScheduleID)
		assert.Equal(t, 3, p.InstallmentNumber)
		assert.True(t, p.PrincipalPaid.Equal(dec("781.87")))
		assert.True(t, p.InterestPaid.Equal(dec("106.62")))
		assert.True(t, p.LateFee.IsZero())
		assert.Equal(t, model.PaymentStatusCompleted, p.Status)
		assert.NotEmpty(t, p.TransactionID)
	})

	t.Run("charges a 5% late fee after the due date", func(t *testing.T) {
		paidAt := time.Date(2026, time.April, 20, 9, 0, 0, 0, time.UTC)

		p, err := model.NewPayment(pendingEntry(), "cust-1", dec("888.49"),
			"CASH", "", "", "", paidAt)
		require.NoError(t, err)

		assert.True(t, p.LateFee.Equal(dec("44.42")),
			"late fee must be 5%% of the installment, got %s", p.LateFee)
	})

	t.Run("payment on the due date itself is on time", func(t *testing.T) {
		paidAt := time.Date(2026, time.April, 15, 23, 59, 0, 0, time.UTC)

		p, err := model.NewPayment(pendingEntry(), "cust-1", dec("888.49"),
			"CASH", "", "", "", paidAt)
		require.NoError(t, err)
		assert.True(t, p.LateFee.IsZero())
	})

	t.Run("rejects an amount below the installment", func(t *testing.T) {
		_, err := model.NewPayment(pendingEntry(), "cust-1", dec("500.00"),
			"CASH", "", "", "", time.Now().UTC())
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("stages a payment received event", func(t *testing.T) {
		paidAt := time.Date(2026, time.April, 14, 16, 0, 0, 0, time.UTC)

		p, err := model.NewPayment(pendingEntry(), "cust-1", dec("888.49"),
			"CASH", "", "", "", paidAt)
		require.NoError(t, err)

		evts := p.DomainEvents()
		require.Len(t, evts, 1)
		received, ok := evts[0].(event.PaymentReceived)
		require.True(t, ok)
		assert.Equal(t, event.TopicPaymentReceived, received.EventType())
		assert.Equal(t, "loan-1", received.PartitionKey())
		assert.Equal(t, p.ID, received.PaymentID)
		assert.True(t, received.PrincipalPaid.Equal(dec("781.87")))
		assert.Equal(t, 3, received.InstallmentNumber)
	})
}
