package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	pgshared "github.com/PatriickRM/loan-banking-system/pkg/postgres"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/valueobject"
)

const scheduleColumns = `
	id, loan_id, installment_number, amount, principal, interest,
	remaining_balance, due_date, status
`

// ScheduleRepo implements port.ScheduleRepository.
type ScheduleRepo struct {
	pool *pgxpool.Pool
}

// NewScheduleRepo creates a PostgreSQL-backed schedule repository.
func NewScheduleRepo(pool *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{pool: pool}
}

// SaveAll inserts the schedule in one transaction. The unique key on
// (loan_id, installment_number) makes redelivered disbursements a no-op.
func (r *ScheduleRepo) SaveAll(ctx context.Context, entries []model.ScheduleEntry) error {
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		for _, e := range entries {
			_, err := tx.Exec(ctx, `
				INSERT INTO payment_schedules (`+scheduleColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				ON CONFLICT (loan_id, installment_number) DO NOTHING
			`, e.ID, e.LoanID, e.InstallmentNumber, e.Amount, e.Principal,
				e.Interest, e.RemainingBalance, e.DueDate, e.Status.String())
			if err != nil {
				return fmt.Errorf("insert schedule entry %d for loan %s: %w",
					e.InstallmentNumber, e.LoanID, err)
			}
		}
		return nil
	})
}

// FindByLoan returns the schedule in installment order.
func (r *ScheduleRepo) FindByLoan(ctx context.Context, loanID string) ([]model.ScheduleEntry, error) {
	return r.findMany(ctx, `
		SELECT `+scheduleColumns+`
		FROM payment_schedules
		WHERE loan_id = $1
		ORDER BY installment_number
	`, loanID)
}

// FindFirstPending returns the earliest unpaid installment.
func (r *ScheduleRepo) FindFirstPending(ctx context.Context, loanID string) (model.ScheduleEntry, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+scheduleColumns+`
		FROM payment_schedules
		WHERE loan_id = $1 AND status = 'PENDING'
		ORDER BY installment_number
		LIMIT 1
	`, loanID)

	entry, err := scanScheduleEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ScheduleEntry{}, apperr.NotFound("no pending installments for loan %s", loanID)
	}
	if err != nil {
		return model.ScheduleEntry{}, fmt.Errorf("find first pending for loan %s: %w", loanID, err)
	}
	return entry, nil
}

// FindPendingDueBefore returns pending installments past the given date.
func (r *ScheduleRepo) FindPendingDueBefore(ctx context.Context, date time.Time) ([]model.ScheduleEntry, error) {
	return r.findMany(ctx, `
		SELECT `+scheduleColumns+`
		FROM payment_schedules
		WHERE status = 'PENDING' AND due_date < $1::date
		ORDER BY due_date, loan_id
	`, date)
}

// FindPendingDueBetween returns pending installments due inside the window.
func (r *ScheduleRepo) FindPendingDueBetween(ctx context.Context, from, to time.Time) ([]model.ScheduleEntry, error) {
	return r.findMany(ctx, `
		SELECT `+scheduleColumns+`
		FROM payment_schedules
		WHERE status = 'PENDING' AND due_date >= $1::date AND due_date <= $2::date
		ORDER BY due_date, loan_id
	`, from, to)
}

func (r *ScheduleRepo) findMany(ctx context.Context, query string, args ...any) ([]model.ScheduleEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []model.ScheduleEntry
	for rows.Next() {
		entry, err := scanScheduleEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanScheduleEntry(row scannable) (model.ScheduleEntry, error) {
	var (
		e      model.ScheduleEntry
		status string
	)
	err := row.Scan(&e.ID, &e.LoanID, &e.InstallmentNumber, &e.Amount,
		&e.Principal, &e.Interest, &e.RemainingBalance, &e.DueDate, &status)
	if err != nil {
		return model.ScheduleEntry{}, err
	}

	e.Status, err = valueobject.NewScheduleStatus(status)
	if err != nil {
		return model.ScheduleEntry{}, err
	}
	return e, nil
}

type scannable interface {
	Scan(dest ...any) error
}
