package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/model"
)

// CriteriaRepo implements port.CriterionRepository.
type CriteriaRepo struct {
	pool *pgxpool.Pool
}

// NewCriteriaRepo creates a PostgreSQL-backed criteria repository.
func NewCriteriaRepo(pool *pgxpool.Pool) *CriteriaRepo {
	return &CriteriaRepo{pool: pool}
}

// FindActive returns the criteria currently applied to new evaluations.
func (r *CriteriaRepo) FindActive(ctx context.Context) ([]model.EvaluationCriterion, error) {
	return r.find(ctx, `SELECT id, name, weight, active FROM evaluation_criteria WHERE active ORDER BY name`)
}

// FindAll returns every criterion.
func (r *CriteriaRepo) FindAll(ctx context.Context) ([]model.EvaluationCriterion, error) {
	return r.find(ctx, `SELECT id, name, weight, active FROM evaluation_criteria ORDER BY name`)
}

// Update changes a criterion's weight and active flag.
func (r *CriteriaRepo) Update(ctx context.Context, c model.EvaluationCriterion) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE evaluation_criteria SET weight = $2, active = $3 WHERE id = $1
	`, c.ID, c.Weight, c.Active)
	if err != nil {
		return fmt.Errorf("update criterion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("criterion %s not found", c.ID)
	}
	return nil
}

func (r *CriteriaRepo) find(ctx context.Context, query string) ([]model.EvaluationCriterion, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query criteria: %w", err)
	}
	defer rows.Close()

	var result []model.EvaluationCriterion
	for rows.Next() {
		var c model.EvaluationCriterion
		if err := rows.Scan(&c.ID, &c.Name, &c.Weight, &c.Active); err != nil {
			return nil, fmt.Errorf("scan criterion: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
