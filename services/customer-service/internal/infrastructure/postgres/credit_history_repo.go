package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/domain/model"
)

// CreditHistoryRepo implements port.CreditHistoryRepository.
type CreditHistoryRepo struct {
	pool *pgxpool.Pool
}

// NewCreditHistoryRepo creates a PostgreSQL-backed credit history repository.
func NewCreditHistoryRepo(pool *pgxpool.Pool) *CreditHistoryRepo {
	return &CreditHistoryRepo{pool: pool}
}

// FindByCustomer returns the single history row of a customer.
func (r *CreditHistoryRepo) FindByCustomer(ctx context.Context, customerID string) (model.CreditHistory, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT customer_id, credit_score, total_debt, active_loans,
			completed_loans, defaulted_loans, last_updated
		FROM credit_history
		WHERE customer_id = $1
	`, customerID)

	var h model.CreditHistory
	err := row.Scan(&h.CustomerID, &h.CreditScore, &h.TotalDebt,
		&h.ActiveLoans, &h.CompletedLoans, &h.DefaultedLoans, &h.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.CreditHistory{}, apperr.NotFound("credit history for customer %s not found", customerID)
	}
	if err != nil {
		return model.CreditHistory{}, fmt.Errorf("find credit history for %s: %w", customerID, err)
	}
	return h, nil
}
