package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/notification-service/internal/domain/service"
)

func TestTemplateRegistry_Render(t *testing.T) {
	registry := service.NewTemplateRegistry()

	t.Run("covers every saga event type", func(t *testing.T) {
		assert.ElementsMatch(t, []string{
			"evaluation.completed", "loan.approved", "loan.rejected",
			"loan.disbursed", "payment.received", "payment.overdue",
		}, registry.Topics())
	})

	t.Run("loan approved", func(t *testing.T) {
		rendered, err := registry.Render("loan.approved", []byte(`{
			"loanId": "loan-1",
			"customerId": "cust-1",
			"approvedAmount": "9500.00"
		}`))
		require.NoError(t, err)

		assert.Equal(t, "cust-1", rendered.CustomerID)
		assert.Equal(t, "Your loan has been approved!", rendered.Subject)
		assert.Contains(t, rendered.Body, "loan-1")
		assert.Contains(t, rendered.Body, "9500.00")
	})

	t.Run("loan rejected includes the reason", func(t *testing.T) {
		rendered, err := registry.Render("loan.rejected", []byte(`{
			"loanId": "loan-1",
			"customerId": "cust-1",
			"rejectionReason": "insufficient credit score"
		}`))
		require.NoError(t, err)
		assert.Contains(t, rendered.Body, "insufficient credit score")
	})

	t.Run("loan disbursed includes the installment plan", func(t *testing.T) {
		rendered, err := registry.Render("loan.disbursed", []byte(`{
			"loanId": "loan-1",
			"customerId": "cust-1",
			"totalAmount": "10661.88",
			"monthlyPayment": "888.49",
			"termMonths": 12
		}`))
		require.NoError(t, err)
		assert.Contains(t, rendered.Body, "12 monthly installments")
		assert.Contains(t, rendered.Body, "888.49")
	})

	t.Run("payment received includes the installment", func(t *testing.T) {
		rendered, err := registry.Render("payment.received", []byte(`{
			"paymentId": "pay-1",
			"loanId": "loan-1",
			"customerId": "cust-1",
			"amount": "888.49",
			"installmentNumber": 3,
			"paymentDate": "2026-04-15T10:00:00Z"
		}`))
		require.NoError(t, err)
		assert.Contains(t, rendered.Body, "installment 3")
		assert.Contains(t, rendered.Body, "15/04/2026")
	})

	t.Run("payment overdue includes days overdue", func(t *testing.T) {
		rendered, err := registry.Render("payment.overdue", []byte(`{
			"loanId": "loan-1",
			"customerId": "cust-1",
			"installmentNumber": 2,
			"amount": "888.49",
			"dueDate": "2026-03-10T00:00:00Z",
			"daysOverdue": 5
		}`))
		require.NoError(t, err)
		assert.Equal(t, "Overdue payment, action required", rendered.Subject)
		assert.Contains(t, rendered.Body, "5 days overdue")
	})

	t.Run("evaluation completed includes score and recommendation", func(t *testing.T) {
		rendered, err := registry.Render("evaluation.completed", []byte(`{
			"evaluationId": "eval-1",
			"loanId": "loan-1",
			"customerId": "cust-1",
			"finalScore": 82,
			"recommendation": "APPROVE"
		}`))
		require.NoError(t, err)
		assert.Contains(t, rendered.Body, "82")
		assert.Contains(t, rendered.Body, "APPROVE")
	})

	t.Run("unknown event type is malformed", func(t *testing.T) {
		_, err := registry.Render("loan.created", []byte(`{}`))
		assert.True(t, errors.Is(err, apperr.ErrMalformedEvent))
	})

	t.Run("broken payload is malformed", func(t *testing.T) {
		_, err := registry.Render("loan.approved", []byte(`{not json`))
		assert.True(t, errors.Is(err, apperr.ErrMalformedEvent))
	})
}
