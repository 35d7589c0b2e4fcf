package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/event"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/port"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockScheduleRepository struct {
	saveAllFunc              func(ctx context.Context, entries []model.ScheduleEntry) error
	findByLoanFunc           func(ctx context.Context, loanID string) ([]model.ScheduleEntry, error)
	findFirstPendingFunc     func(ctx context.Context, loanID string) (model.ScheduleEntry, error)
	findPendingDueBeforeFunc func(ctx context.Context, date time.Time) ([]model.ScheduleEntry, error)
	findPendingBetweenFunc   func(ctx context.Context, from, to time.Time) ([]model.ScheduleEntry, error)
}

func (m *mockScheduleRepository) SaveAll(ctx context.Context, entries []model.ScheduleEntry) error {
	return m.saveAllFunc(ctx, entries)
}

func (m *mockScheduleRepository) FindByLoan(ctx context.Context, loanID string) ([]model.ScheduleEntry, error) {
	return m.findByLoanFunc(ctx, loanID)
}

func (m *mockScheduleRepository) FindFirstPending(ctx context.Context, loanID string) (model.ScheduleEntry, error) {
	return m.findFirstPendingFunc(ctx, loanID)
}

func (m *mockScheduleRepository) FindPendingDueBefore(ctx context.Context, date time.Time) ([]model.ScheduleEntry, error) {
	return m.findPendingDueBeforeFunc(ctx, date)
}

func (m *mockScheduleRepository) FindPendingDueBetween(ctx context.Context, from, to time.Time) ([]model.ScheduleEntry, error) {
	return m.findPendingBetweenFunc(ctx, from, to)
}

type mockPaymentRepository struct {
	recordFunc     func(ctx context.Context, payment model.Payment) error
	findByIDFunc   func(ctx context.Context, id string) (model.Payment, error)
	findByLoanFunc func(ctx context.Context, loanID string) ([]model.Payment, error)
}

func (m *mockPaymentRepository) Record(ctx context.Context, payment model.Payment) error {
	return m.recordFunc(ctx, payment)
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, id string) (model.Payment, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockPaymentRepository) FindByLoan(ctx context.Context, loanID string) ([]model.Payment, error) {
	return m.findByLoanFunc(ctx, loanID)
}

type mockLoanDirectory struct {
	getLoanFunc func(ctx context.Context, id string) (port.LoanSummary, error)
}

func (m *mockLoanDirectory) GetLoan(ctx context.Context, id string) (port.LoanSummary, error) {
	return m.getLoanFunc(ctx, id)
}

type mockOverduePublisher struct {
	publishFunc func(ctx context.Context, notice event.PaymentOverdue) error
}

func (m *mockOverduePublisher) PublishOverdue(ctx context.Context, notice event.PaymentOverdue) error {
	return m.publishFunc(ctx, notice)
}
