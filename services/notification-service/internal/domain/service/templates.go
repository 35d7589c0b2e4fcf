package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
)

// Rendered is the output of a template: who it addresses and what it says.
type Rendered struct {
	CustomerID string
	Subject    string
	Body       string
}

// Renderer turns a raw event payload into a customer-facing message.
type Renderer func(payload []byte) (Rendered, error)

// TemplateRegistry is the strategy table mapping event types to renderers.
// Adding a notification for a new event means registering one entry, the
// dispatcher never changes.
type TemplateRegistry struct {
	renderers map[string]Renderer
}

// NewTemplateRegistry builds the registry with every supported event type.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{renderers: map[string]Renderer{
		"evaluation.completed": renderEvaluationCompleted,
		"loan.approved":        renderLoanApproved,
		"loan.rejected":        renderLoanRejected,
		"loan.disbursed":       renderLoanDisbursed,
		"payment.received":     renderPaymentReceived,
		"payment.overdue":      renderPaymentOverdue,
	}}
}

// Topics lists the event types with a registered template.
func (r *TemplateRegistry) Topics() []string {
	topics := make([]string, 0, len(r.renderers))
	for t := range r.renderers {
		topics = append(topics, t)
	}
	return topics
}

// Render dispatches to the renderer registered for eventType.
func (r *TemplateRegistry) Render(eventType string, payload []byte) (Rendered, error) {
	renderer, ok := r.renderers[eventType]
	if !ok {
		return Rendered{}, apperr.MalformedEvent("no template for event type %s", eventType)
	}
	return renderer(payload)
}

func decode[T any](eventType string, payload []byte) (T, error) {
	var evt T
	if err := json.Unmarshal(payload, &evt); err != nil {
		return evt, apperr.MalformedEvent("decode %s: %v", eventType, err)
	}
	return evt, nil
}

type evaluationCompletedPayload struct {
	LoanID         string `json:"loanId"`
	CustomerID     string `json:"customerId"`
	FinalScore     int    `json:"finalScore"`
	Recommendation string `json:"recommendation"`
}

func renderEvaluationCompleted(payload []byte) (Rendered, error) {
	evt, err := decode[evaluationCompletedPayload]("evaluation.completed", payload)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{
		CustomerID: evt.CustomerID,
		Subject:    "Your loan application has been evaluated",
		Body: fmt.Sprintf(
			"The credit evaluation for loan %s is complete. Final score: %d, recommendation: %s.",
			evt.LoanID, evt.FinalScore, evt.Recommendation),
	}, nil
}

type loanApprovedPayload struct {
	LoanID         string          `json:"loanId"`
	CustomerID     string          `json:"customerId"`
	ApprovedAmount decimal.Decimal `json:"approvedAmount"`
}

func renderLoanApproved(payload []byte) (Rendered, error) {
	evt, err := decode[loanApprovedPayload]("loan.approved", payload)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{
		CustomerID: evt.CustomerID,
		Subject:    "Your loan has been approved!",
		Body: fmt.Sprintf(
			"Loan %s was approved for %s. The funds will be available after disbursement.",
			evt.LoanID, evt.ApprovedAmount.StringFixed(2)),
	}, nil
}

type loanRejectedPayload struct {
	LoanID          string `json:"loanId"`
	CustomerID      string `json:"customerId"`
	RejectionReason string `json:"rejectionReason"`
}

func renderLoanRejected(payload []byte) (Rendered, error) {
	evt, err := decode[loanRejectedPayload]("loan.rejected", payload)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{
		CustomerID: evt.CustomerID,
		Subject:    "Update on your loan application",
		Body: fmt.Sprintf(
			"We are sorry: loan application %s was not approved. Reason: %s.",
			evt.LoanID, evt.RejectionReason),
	}, nil
}

type loanDisbursedPayload struct {
	LoanID         string          `json:"loanId"`
	CustomerID     string          `json:"customerId"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	TermMonths     int             `json:"termMonths"`
}

func renderLoanDisbursed(payload []byte) (Rendered, error) {
	evt, err := decode[loanDisbursedPayload]("loan.disbursed", payload)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{
		CustomerID: evt.CustomerID,
		Subject:    "Your loan has been disbursed!",
		Body: fmt.Sprintf(
			"Loan %s is now active: %d monthly installments of %s, total %s.",
			evt.LoanID, evt.TermMonths, evt.MonthlyPayment.StringFixed(2),
			evt.TotalAmount.StringFixed(2)),
	}, nil
}

type paymentReceivedPayload struct {
	PaymentID         string          `json:"paymentId"`
	LoanID            string          `json:"loanId"`
	CustomerID        string          `json:"customerId"`
	Amount            decimal.Decimal `json:"amount"`
	InstallmentNumber int             `json:"installmentNumber"`
	PaymentDate       time.Time       `json:"paymentDate"`
}

func renderPaymentReceived(payload []byte) (Rendered, error) {
	evt, err := decode[paymentReceivedPayload]("payment.received", payload)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{
		CustomerID: evt.CustomerID,
		Subject:    "Payment received",
		Body: fmt.Sprintf(
			"We received your payment of %s for installment %d of loan %s on %s. Transaction: %s.",
			evt.Amount.StringFixed(2), evt.InstallmentNumber, evt.LoanID,
			evt.PaymentDate.Format("02/01/2006"), evt.PaymentID),
	}, nil
}

type paymentOverduePayload struct {
	LoanID            string          `json:"loanId"`
	CustomerID        string          `json:"customerId"`
	InstallmentNumber int             `json:"installmentNumber"`
	Amount            decimal.Decimal `json:"amount"`
	DueDate           time.Time       `json:"dueDate"`
	DaysOverdue       int             `json:"daysOverdue"`
}

func renderPaymentOverdue(payload []byte) (Rendered, error) {
	evt, err := decode[paymentOverduePayload]("payment.overdue", payload)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{
		CustomerID: evt.CustomerID,
		Subject:    "Overdue payment, action required",
		Body: fmt.Sprintf(
			"Installment %d of loan %s for %s was due on %s and is %d days overdue. Please pay as soon as possible.",
			evt.InstallmentNumber, evt.LoanID, evt.Amount.StringFixed(2),
			evt.DueDate.Format("02/01/2006"), evt.DaysOverdue),
	}, nil
}
