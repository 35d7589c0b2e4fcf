package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/pkg/events"
)

const (
	TopicPaymentReceived = "payment.received"
	TopicPaymentOverdue  = "payment.overdue"
)

// PaymentReceived is published when an installment is settled. The loan
// service applies PrincipalPaid to the outstanding balance, so partition
// by loan id to keep payments for one loan ordered.
type PaymentReceived struct {
	events.BaseEvent
	PaymentID         string          `json:"paymentId"`
	LoanID            string          `json:"loanId"`
	CustomerID        string          `json:"customerId"`
	Amount            decimal.Decimal `json:"amount"`
	PrincipalPaid     decimal.Decimal `json:"principalPaid"`
	InterestPaid      decimal.Decimal `json:"interestPaid"`
	InstallmentNumber int             `json:"installmentNumber"`
	PaymentDate       time.Time       `json:"paymentDate"`
}

func NewPaymentReceived(paymentID, loanID, customerID string, amount, principalPaid, interestPaid decimal.Decimal, installmentNumber int, paymentDate time.Time) PaymentReceived {
	return PaymentReceived{
		BaseEvent:         events.NewBaseEvent(TopicPaymentReceived, "Payment", loanID),
		PaymentID:         paymentID,
		LoanID:            loanID,
		CustomerID:        customerID,
		Amount:            amount,
		PrincipalPaid:     principalPaid,
		InterestPaid:      interestPaid,
		InstallmentNumber: installmentNumber,
		PaymentDate:       paymentDate,
	}
}

// PaymentOverdue is published by the daily scan for every pending
// installment past its due date. The scan derives it from current state
// and stores nothing, so the same installment is reported again on each
// run until it is paid.
type PaymentOverdue struct {
	events.BaseEvent
	ScheduleID        string          `json:"scheduleId"`
	LoanID            string          `json:"loanId"`
	CustomerID        string          `json:"customerId"`
	InstallmentNumber int             `json:"installmentNumber"`
	Amount            decimal.Decimal `json:"amount"`
	DueDate           time.Time       `json:"dueDate"`
	DaysOverdue       int             `json:"daysOverdue"`
}

func NewPaymentOverdue(scheduleID, loanID, customerID string, installmentNumber int, amount decimal.Decimal, dueDate time.Time, daysOverdue int) PaymentOverdue {
	return PaymentOverdue{
		BaseEvent:         events.NewBaseEvent(TopicPaymentOverdue, "PaymentSchedule", loanID),
		ScheduleID:        scheduleID,
		LoanID:            loanID,
		CustomerID:        customerID,
		InstallmentNumber: installmentNumber,
		Amount:            amount,
		DueDate:           dueDate,
		DaysOverdue:       daysOverdue,
	}
}
