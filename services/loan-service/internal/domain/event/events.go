package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/pkg/events"
)

// DomainEvent aliases the shared envelope interface.
type DomainEvent = events.DomainEvent

// Topic names owned by this service.
const (
	TopicLoanCreated   = "loan.created"
	TopicLoanApproved  = "loan.approved"
	TopicLoanRejected  = "loan.rejected"
	TopicLoanDisbursed = "loan.disbursed"
)

// LoanCreated is published when an application passes product validation.
// The credit evaluation service reacts by opening an evaluation.
type LoanCreated struct {
	events.BaseEvent
	LoanID       string          `json:"loanId"`
	CustomerID   string          `json:"customerId"`
	Amount       decimal.Decimal `json:"amount"`
	TermMonths   int             `json:"termMonths"`
	InterestRate decimal.Decimal `json:"interestRate"`
	Purpose      string          `json:"purpose"`
}

func NewLoanCreated(loanID, customerID string, amount decimal.Decimal, termMonths int, interestRate decimal.Decimal, purpose string) LoanCreated {
	return LoanCreated{
		BaseEvent:    events.NewBaseEvent(TopicLoanCreated, "Loan", loanID),
		LoanID:       loanID,
		CustomerID:   customerID,
		Amount:       amount,
		TermMonths:   termMonths,
		InterestRate: interestRate,
		Purpose:      purpose,
	}
}

// LoanApproved is published on the PENDING -> APPROVED transition.
type LoanApproved struct {
	events.BaseEvent
	LoanID         string          `json:"loanId"`
	CustomerID     string          `json:"customerId"`
	ApprovedAmount decimal.Decimal `json:"approvedAmount"`
	EvaluatedBy    string          `json:"evaluatedBy"`
}

func NewLoanApproved(loanID, customerID string, approvedAmount decimal.Decimal, evaluatedBy string) LoanApproved {
	return LoanApproved{
		BaseEvent:      events.NewBaseEvent(TopicLoanApproved, "Loan", loanID),
		LoanID:         loanID,
		CustomerID:     customerID,
		ApprovedAmount: approvedAmount,
		EvaluatedBy:    evaluatedBy,
	}
}

// LoanRejected is published on the PENDING -> REJECTED transition.
type LoanRejected struct {
	events.BaseEvent
	LoanID          string `json:"loanId"`
	CustomerID      string `json:"customerId"`
	RejectionReason string `json:"rejectionReason"`
}

func NewLoanRejected(loanID, customerID, reason string) LoanRejected {
	return LoanRejected{
		BaseEvent:       events.NewBaseEvent(TopicLoanRejected, "Loan", loanID),
		LoanID:          loanID,
		CustomerID:      customerID,
		RejectionReason: reason,
	}
}

// LoanDisbursed is published on the APPROVED -> ACTIVE transition. It carries
// exactly the fields the payment schedule generator expands into installments.
type LoanDisbursed struct {
	events.BaseEvent
	LoanID           string          `json:"loanId"`
	CustomerID       string          `json:"customerId"`
	Amount           decimal.Decimal `json:"amount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	MonthlyPayment   decimal.Decimal `json:"monthlyPayment"`
	TermMonths       int             `json:"termMonths"`
	InterestRate     decimal.Decimal `json:"interestRate"`
	DisbursementDate time.Time       `json:"disbursementDate"`
}

func NewLoanDisbursed(loanID, customerID string, amount, totalAmount, monthlyPayment decimal.Decimal, termMonths int, interestRate decimal.Decimal, disbursementDate time.Time) LoanDisbursed {
	return LoanDisbursed{
		BaseEvent:        events.NewBaseEvent(TopicLoanDisbursed, "Loan", loanID),
		LoanID:           loanID,
		CustomerID:       customerID,
		Amount:           amount,
		TotalAmount:      totalAmount,
		MonthlyPayment:   monthlyPayment,
		TermMonths:       termMonths,
		InterestRate:     interestRate,
		DisbursementDate: disbursementDate,
	}
}
