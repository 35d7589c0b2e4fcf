package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/model"
)

// ProcessPaymentRequest settles the earliest pending installment of a loan.
type ProcessPaymentRequest struct {
	LoanID          string          `json:"loanId"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"paymentMethod"`
	ReferenceNumber string          `json:"referenceNumber"`
	Notes           string          `json:"notes"`
	ProcessedBy     string          `json:"processedBy"`
}

// PaymentResponse is the REST representation of a recorded payment.
type PaymentResponse struct {
	ID                string          `json:"id"`
	LoanID            string          `json:"loanId"`
	CustomerID        string          `json:"customerId"`
	ScheduleID        string          `json:"scheduleId"`
	InstallmentNumber int             `json:"installmentNumber"`
	Amount            decimal.Decimal `json:"amount"`
	PrincipalPaid     decimal.Decimal `json:"principalPaid"`
	InterestPaid      decimal.Decimal `json:"interestPaid"`
	LateFee           decimal.Decimal `json:"lateFee"`
	PaymentMethod     string          `json:"paymentMethod"`
	TransactionID     string          `json:"transactionId"`
	ReferenceNumber   string          `json:"referenceNumber,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	ProcessedBy       string          `json:"processedBy,omitempty"`
	PaymentDate       time.Time       `json:"paymentDate"`
	DueDate           time.Time       `json:"dueDate"`
	Status            string          `json:"status"`
}

// ScheduleEntryResponse is one installment with its read-time overdue
// view. DaysUntilDue is negative once the due date has passed.
type ScheduleEntryResponse struct {
	ID                string          `json:"id"`
	LoanID            string          `json:"loanId"`
	InstallmentNumber int             `json:"installmentNumber"`
	Amount            decimal.Decimal `json:"amount"`
	Principal         decimal.Decimal `json:"principal"`
	Interest          decimal.Decimal `json:"interest"`
	RemainingBalance  decimal.Decimal `json:"remainingBalance"`
	DueDate           time.Time       `json:"dueDate"`
	Status            string          `json:"status"`
	DaysUntilDue      int             `json:"daysUntilDue"`
	IsOverdue         bool            `json:"isOverdue"`
	DaysOverdue       int             `json:"daysOverdue"`
}

// ToPaymentResponse maps a payment record.
func ToPaymentResponse(p model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		LoanID:            p.LoanID,
		CustomerID:        p.CustomerID,
		ScheduleID:        p.ScheduleID,
		InstallmentNumber: p.InstallmentNumber,
		Amount:            p.Amount,
		PrincipalPaid:     p.PrincipalPaid,
		InterestPaid:      p.InterestPaid,
		LateFee:           p.LateFee,
		PaymentMethod:     p.PaymentMethod,
		TransactionID:     p.TransactionID,
		ReferenceNumber:   p.ReferenceNumber,
		Notes:             p.Notes,
		ProcessedBy:       p.ProcessedBy,
		PaymentDate:       p.PaymentDate,
		DueDate:           p.DueDate,
		Status:            p.Status,
	}
}

// ToPaymentResponses maps a slice of payments.
func ToPaymentResponses(payments []model.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, ToPaymentResponse(p))
	}
	return out
}

// ToScheduleEntryResponse maps an installment, deriving the overdue view
// from the given reference date.
func ToScheduleEntryResponse(e model.ScheduleEntry, today time.Time) ScheduleEntryResponse {
	resp := ScheduleEntryResponse{
		ID:                e.ID,
		LoanID:            e.LoanID,
		InstallmentNumber: e.InstallmentNumber,
		Amount:            e.Amount,
		Principal:         e.Principal,
		Interest:          e.Interest,
		RemainingBalance:  e.RemainingBalance,
		DueDate:           e.DueDate,
		Status:            e.Status.String(),
		DaysUntilDue:      e.DaysUntilDue(today),
	}
	if e.IsOverdue(today) {
		resp.IsOverdue = true
		resp.DaysOverdue = e.DaysOverdue(today)
	}
	return resp
}

// ToScheduleEntryResponses maps a slice of installments.
func ToScheduleEntryResponses(entries []model.ScheduleEntry, today time.Time) []ScheduleEntryResponse {
	out := make([]ScheduleEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToScheduleEntryResponse(e, today))
	}
	return out
}
