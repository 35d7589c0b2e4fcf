package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/events"
	pgshared "github.com/PatriickRM/loan-banking-system/pkg/postgres"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/model"
)

const paymentColumns = `
	id, loan_id, customer_id, schedule_id, installment_number, amount,
	principal_paid, interest_paid, late_fee, payment_method, transaction_id,
	reference_number, notes, processed_by, payment_date, due_date, status
`

// PaymentRepo implements port.PaymentRepository.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentRepo creates a PostgreSQL-backed payment repository.
func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Record marks the schedule entry paid, inserts the payment and stages its
// events, all in one transaction. The status guard on the entry update
// makes concurrent payments against the same installment lose cleanly.
func (r *PaymentRepo) Record(ctx context.Context, payment model.Payment) error {
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE payment_schedules
			SET status = 'PAID'
			WHERE id = $1 AND status = 'PENDING'
		`, payment.ScheduleID)
		if err != nil {
			return fmt.Errorf("mark installment paid: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperr.Conflict("installment %d of loan %s is no longer pending",
				payment.InstallmentNumber, payment.LoanID)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO payments (`+paymentColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		`, payment.ID, payment.LoanID, payment.CustomerID, payment.ScheduleID,
			payment.InstallmentNumber, payment.Amount, payment.PrincipalPaid,
			payment.InterestPaid, payment.LateFee, payment.PaymentMethod,
			payment.TransactionID, nullable(payment.ReferenceNumber),
			nullable(payment.Notes), nullable(payment.ProcessedBy),
			payment.PaymentDate, payment.DueDate, payment.Status)
		if err != nil {
			return fmt.Errorf("insert payment %s: %w", payment.ID, err)
		}

		entries, err := events.Entries(payment.DomainEvents())
		if err != nil {
			return err
		}
		return pgshared.InsertOutbox(ctx, tx, entries)
	})
}

// FindByID returns a single payment.
func (r *PaymentRepo) FindByID(ctx context.Context, id string) (model.Payment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE id = $1
	`, id)

	payment, err := scanPayment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Payment{}, apperr.NotFound("payment %s not found", id)
	}
	if err != nil {
		return model.Payment{}, fmt.Errorf("find payment %s: %w", id, err)
	}
	return payment, nil
}

// FindByLoan returns all payments for a loan, newest first.
func (r *PaymentRepo) FindByLoan(ctx context.Context, loanID string) ([]model.Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE loan_id = $1
		ORDER BY payment_date DESC
	`, loanID)
	if err != nil {
		return nil, fmt.Errorf("query payments for loan %s: %w", loanID, err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func scanPayment(row scannable) (model.Payment, error) {
	var (
		p                             model.Payment
		reference, notes, processedBy *string
	)
	err := row.Scan(&p.ID, &p.LoanID, &p.CustomerID, &p.ScheduleID,
		&p.InstallmentNumber, &p.Amount, &p.PrincipalPaid, &p.InterestPaid,
		&p.LateFee, &p.PaymentMethod, &p.TransactionID, &reference, &notes,
		&processedBy, &p.PaymentDate, &p.DueDate, &p.Status)
	if err != nil {
		return model.Payment{}, err
	}

	p.ReferenceNumber = deref(reference)
	p.Notes = deref(notes)
	p.ProcessedBy = deref(processedBy)
	return p, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
