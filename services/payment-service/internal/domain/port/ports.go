package port

import (
	"context"
	"time"

	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/event"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/model"
)

// ScheduleRepository stores the amortization schedule of a loan. SaveAll
// is idempotent per (loan, installment number) so a redelivered
// disbursement event never duplicates entries.
type ScheduleRepository interface {
	SaveAll(ctx context.Context, entries []model.ScheduleEntry) error
	FindByLoan(ctx context.Context, loanID string) ([]model.ScheduleEntry, error)
	FindFirstPending(ctx context.Context, loanID string) (model.ScheduleEntry, error)
	FindPendingDueBefore(ctx context.Context, date time.Time) ([]model.ScheduleEntry, error)
	FindPendingDueBetween(ctx context.Context, from, to time.Time) ([]model.ScheduleEntry, error)
}

// PaymentRepository records a settled payment. Record marks the schedule
// entry paid, inserts the payment and stages its events in one
// transaction; a concurrent payment against the same entry loses the
// status guard and gets a conflict.
type PaymentRepository interface {
	Record(ctx context.Context, payment model.Payment) error
	FindByID(ctx context.Context, id string) (model.Payment, error)
	FindByLoan(ctx context.Context, loanID string) ([]model.Payment, error)
}

// LoanSummary is the slice of a loan this service needs.
type LoanSummary struct {
	ID         string
	CustomerID string
}

// LoanDirectory looks up loans in the loan service.
type LoanDirectory interface {
	GetLoan(ctx context.Context, id string) (LoanSummary, error)
}

// OverduePublisher emits overdue notices straight to the broker. The
// scan reads state without mutating it, so there is no transaction to
// stage an outbox row in.
type OverduePublisher interface {
	PublishOverdue(ctx context.Context, notice event.PaymentOverdue) error
}
