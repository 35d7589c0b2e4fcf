package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/events"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/event"
)

var lateFeeRate = decimal.NewFromFloat(0.05)

// Payment is an append-only record of money received against one schedule
// entry. Principal and interest come straight from the entry, never
// re-split from the paid amount: overpayment is not carried forward.
type Payment struct {
	ID                string
	LoanID            string
	CustomerID        string
	ScheduleID        string
	InstallmentNumber int
	Amount            decimal.Decimal
	PrincipalPaid     decimal.Decimal
	InterestPaid      decimal.Decimal
	LateFee           decimal.Decimal
	PaymentMethod     string
	TransactionID     string
	ReferenceNumber   string
	Notes             string
	ProcessedBy       string
	PaymentDate       time.Time
	DueDate           time.Time
	Status            string

	domainEvents []events.DomainEvent
}

// DomainEvents returns the events staged by the constructor. They are
// written to the outbox in the same transaction that records the payment.
func (p Payment) DomainEvents() []events.DomainEvent {
	return p.domainEvents
}

// PaymentStatusCompleted is the only status this flow records; failed
// attempts never persist.
const PaymentStatusCompleted = "COMPLETED"

// NewPayment settles a pending schedule entry. The amount must cover the
// full installment; paying after the due date adds a 5% late fee on the
// entry amount, recorded on the payment without touching the balance math.
func NewPayment(entry ScheduleEntry, customerID string, amount decimal.Decimal, method, referenceNumber, notes, processedBy string, now time.Time) (Payment, error) {
	if amount.LessThan(entry.Amount) {
		return Payment{}, apperr.Validation(
			"insufficient amount %s, installment %d requires %s",
			amount, entry.InstallmentNumber, entry.Amount)
	}

	p := Payment{
		ID:                uuid.New().String(),
		LoanID:            entry.LoanID,
		CustomerID:        customerID,
		ScheduleID:        entry.ID,
		InstallmentNumber: entry.InstallmentNumber,
		Amount:            amount,
		PrincipalPaid:     entry.Principal,
		InterestPaid:      entry.Interest,
		LateFee:           decimal.Zero,
		PaymentMethod:     method,
		TransactionID:     uuid.New().String(),
		ReferenceNumber:   referenceNumber,
		Notes:             notes,
		ProcessedBy:       processedBy,
		PaymentDate:       now,
		DueDate:           entry.DueDate,
		Status:            PaymentStatusCompleted,
	}

	if dateOnly(now).After(dateOnly(entry.DueDate)) {
		p.LateFee = entry.Amount.Mul(lateFeeRate).Round(2)
	}

	p.domainEvents = []events.DomainEvent{
		event.NewPaymentReceived(p.ID, p.LoanID, p.CustomerID, p.Amount,
			p.PrincipalPaid, p.InterestPaid, p.InstallmentNumber, p.PaymentDate),
	}
	return p, nil
}
