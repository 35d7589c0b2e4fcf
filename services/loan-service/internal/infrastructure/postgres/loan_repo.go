package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/events"
	pgshared "github.com/PatriickRM/loan-banking-system/pkg/postgres"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/valueobject"
)

const loanColumns = `
	id, customer_id, product_id, amount, approved_amount, interest_rate,
	term_months, purpose, status, monthly_payment, total_amount,
	outstanding_balance, evaluated_by, rejection_reason, application_date,
	approval_date, rejection_date, disbursement_date, completion_date, version
`

// LoanRepo implements port.LoanRepository. Every save writes the aggregate
// row and its outbox entries in one transaction, with optimistic locking on
// the version column.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Save upserts the loan and queues its domain events.
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return r.saveInTx(ctx, tx, loan)
	})
}

// SaveAppliedPayment saves the loan only if the payment id has not been
// applied before. The dedup insert and the aggregate update share the
// transaction, so redelivery can never half-apply.
func (r *LoanRepo) SaveAppliedPayment(ctx context.Context, loan model.Loan, paymentID string) (bool, error) {
	applied := false
	err := pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			INSERT INTO applied_payments (payment_id, loan_id, applied_at)
			VALUES ($1, $2, now())
			ON CONFLICT (payment_id) DO NOTHING
		`, paymentID, loan.ID())
		if err != nil {
			return fmt.Errorf("record applied payment: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		applied = true
		return r.saveInTx(ctx, tx, loan)
	})
	return applied, err
}

func (r *LoanRepo) saveInTx(ctx context.Context, tx pgx.Tx, loan model.Loan) error {
	var approved *decimal.Decimal
	if a := loan.ApprovedAmount(); a.Valid {
		v := a.Decimal
		approved = &v
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO loans (`+loanColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (id) DO UPDATE SET
			approved_amount     = EXCLUDED.approved_amount,
			status              = EXCLUDED.status,
			monthly_payment     = EXCLUDED.monthly_payment,
			total_amount        = EXCLUDED.total_amount,
			outstanding_balance = EXCLUDED.outstanding_balance,
			evaluated_by        = EXCLUDED.evaluated_by,
			rejection_reason    = EXCLUDED.rejection_reason,
			approval_date       = EXCLUDED.approval_date,
			rejection_date      = EXCLUDED.rejection_date,
			disbursement_date   = EXCLUDED.disbursement_date,
			completion_date     = EXCLUDED.completion_date,
			version             = loans.version + 1
		WHERE loans.version = EXCLUDED.version
	`,
		loan.ID(), loan.CustomerID(), loan.ProductID(),
		loan.Amount(), approved, loan.InterestRate(),
		loan.TermMonths(), loan.Purpose(), loan.Status().String(),
		loan.MonthlyPayment(), loan.TotalAmount(), loan.OutstandingBalance(),
		loan.EvaluatedBy(), loan.RejectionReason(), loan.ApplicationDate(),
		loan.ApprovalDate(), loan.RejectionDate(), loan.DisbursementDate(), loan.CompletionDate(),
		loan.Version(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.Conflict("loan %s was modified concurrently", loan.ID())
	}

	entries, err := events.Entries(loan.DomainEvents())
	if err != nil {
		return fmt.Errorf("build outbox entries: %w", err)
	}
	return pgshared.InsertOutbox(ctx, tx, entries)
}

// FindByID retrieves a loan by id.
func (r *LoanRepo) FindByID(ctx context.Context, id string) (model.Loan, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1`, id)
	loan, err := scanLoan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Loan{}, apperr.NotFound("loan %s not found", id)
	}
	return loan, err
}

// FindByCustomer retrieves all loans for a customer, most recent first.
func (r *LoanRepo) FindByCustomer(ctx context.Context, customerID string) ([]model.Loan, error) {
	return r.findMany(ctx,
		`SELECT `+loanColumns+` FROM loans WHERE customer_id = $1 ORDER BY application_date DESC`,
		customerID)
}

// FindByStatus retrieves all loans in a status, most recent first.
func (r *LoanRepo) FindByStatus(ctx context.Context, status valueobject.LoanStatus) ([]model.Loan, error) {
	return r.findMany(ctx,
		`SELECT `+loanColumns+` FROM loans WHERE status = $1 ORDER BY application_date DESC`,
		status.String())
}

func (r *LoanRepo) findMany(ctx context.Context, query string, args ...any) ([]model.Loan, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var result []model.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, loan)
	}
	return result, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanLoan(s scannable) (model.Loan, error) {
	var (
		id, customerID, productID                             string
		amount, interestRate                                  decimal.Decimal
		approvedAmount                                        *decimal.Decimal
		termMonths, version                                   int
		purpose, statusStr                                    string
		monthlyPayment, totalAmount, outstandingBalance       decimal.Decimal
		evaluatedBy, rejectionReason                          *string
		applicationDate                                       time.Time
		approvalDate, rejectionDate, disbursement, completion *time.Time
	)

	err := s.Scan(
		&id, &customerID, &productID, &amount, &approvedAmount, &interestRate,
		&termMonths, &purpose, &statusStr, &monthlyPayment, &totalAmount,
		&outstandingBalance, &evaluatedBy, &rejectionReason, &applicationDate,
		&approvalDate, &rejectionDate, &disbursement, &completion, &version,
	)
	if err != nil {
		return model.Loan{}, err
	}

	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan status: %w", err)
	}

	var approved decimal.NullDecimal
	if approvedAmount != nil {
		approved = decimal.NullDecimal{Decimal: *approvedAmount, Valid: true}
	}

	return model.ReconstructLoan(
		id, customerID, productID,
		amount, approved, interestRate,
		termMonths, purpose, status,
		monthlyPayment, totalAmount, outstandingBalance,
		deref(evaluatedBy), deref(rejectionReason),
		applicationDate,
		approvalDate, rejectionDate, disbursement, completion,
		version,
	), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
