package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/events"
	pgshared "github.com/PatriickRM/loan-banking-system/pkg/postgres"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/valueobject"
)

const evaluationColumns = `
	id, loan_id, customer_id, automatic_score, manual_score, final_score,
	recommendation, risk_level, status, evaluator_id, evaluator_name,
	comments, evaluation_date, completed_date, version
`

// EvaluationRepo implements port.EvaluationRepository.
type EvaluationRepo struct {
	pool *pgxpool.Pool
}

// NewEvaluationRepo creates a PostgreSQL-backed evaluation repository.
func NewEvaluationRepo(pool *pgxpool.Pool) *EvaluationRepo {
	return &EvaluationRepo{pool: pool}
}

// Save upserts the evaluation, replaces its audit detail rows when provided,
// and queues the domain events, all in one transaction. The unique index on
// loan_id enforces the one-evaluation-per-loan rule even under races.
func (r *EvaluationRepo) Save(ctx context.Context, ev model.Evaluation, details []model.CriterionScore) error {
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			INSERT INTO evaluations (`+evaluationColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			ON CONFLICT (id) DO UPDATE SET
				manual_score   = EXCLUDED.manual_score,
				final_score    = EXCLUDED.final_score,
				recommendation = EXCLUDED.recommendation,
				risk_level     = EXCLUDED.risk_level,
				status         = EXCLUDED.status,
				evaluator_id   = EXCLUDED.evaluator_id,
				evaluator_name = EXCLUDED.evaluator_name,
				comments       = EXCLUDED.comments,
				completed_date = EXCLUDED.completed_date,
				version        = evaluations.version + 1
			WHERE evaluations.version = EXCLUDED.version
		`,
			ev.ID(), ev.LoanID(), ev.CustomerID(),
			ev.AutomaticScore(), ev.ManualScore(), ev.FinalScore(),
			string(ev.Recommendation()), string(ev.RiskLevel()), ev.Status().String(),
			ev.EvaluatorID(), ev.EvaluatorName(), ev.Comments(),
			ev.EvaluationDate(), ev.CompletedDate(), ev.Version(),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return apperr.Conflict("evaluation already exists for loan %s", ev.LoanID())
			}
			return fmt.Errorf("save evaluation: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperr.Conflict("evaluation %s was modified concurrently", ev.ID())
		}

		if details != nil {
			// replace, never append: re-scoring the same evaluation id stays
			// idempotent
			if _, err := tx.Exec(ctx, `DELETE FROM evaluation_details WHERE evaluation_id = $1`, ev.ID()); err != nil {
				return fmt.Errorf("clear evaluation details: %w", err)
			}
			for _, d := range details {
				_, err := tx.Exec(ctx, `
					INSERT INTO evaluation_details (evaluation_id, criterion_id, criterion_name, score)
					VALUES ($1, $2, $3, $4)
				`, ev.ID(), d.CriterionID, d.CriterionName, d.Score)
				if err != nil {
					return fmt.Errorf("insert evaluation detail: %w", err)
				}
			}
		}

		entries, err := events.Entries(ev.DomainEvents())
		if err != nil {
			return fmt.Errorf("build outbox entries: %w", err)
		}
		return pgshared.InsertOutbox(ctx, tx, entries)
	})
}

// FindByID retrieves an evaluation by id.
func (r *EvaluationRepo) FindByID(ctx context.Context, id string) (model.Evaluation, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+evaluationColumns+` FROM evaluations WHERE id = $1`, id)
	ev, err := scanEvaluation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Evaluation{}, apperr.NotFound("evaluation %s not found", id)
	}
	return ev, err
}

// FindByLoanID retrieves the evaluation attached to a loan.
func (r *EvaluationRepo) FindByLoanID(ctx context.Context, loanID string) (model.Evaluation, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+evaluationColumns+` FROM evaluations WHERE loan_id = $1`, loanID)
	ev, err := scanEvaluation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Evaluation{}, apperr.NotFound("evaluation for loan %s not found", loanID)
	}
	return ev, err
}

// FindByStatus lists evaluations in a status, oldest first so the review
// queue drains fairly.
func (r *EvaluationRepo) FindByStatus(ctx context.Context, status valueobject.EvaluationStatus) ([]model.Evaluation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+evaluationColumns+` FROM evaluations WHERE status = $1 ORDER BY evaluation_date`,
		status.String())
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	var result []model.Evaluation
	for rows.Next() {
		ev, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, ev)
	}
	return result, rows.Err()
}

// FindDetails returns the audit rows for one evaluation.
func (r *EvaluationRepo) FindDetails(ctx context.Context, evaluationID string) ([]model.CriterionScore, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT criterion_id, criterion_name, score
		FROM evaluation_details
		WHERE evaluation_id = $1
		ORDER BY criterion_name
	`, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("query evaluation details: %w", err)
	}
	defer rows.Close()

	var details []model.CriterionScore
	for rows.Next() {
		var d model.CriterionScore
		if err := rows.Scan(&d.CriterionID, &d.CriterionName, &d.Score); err != nil {
			return nil, fmt.Errorf("scan evaluation detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanEvaluation(s scannable) (model.Evaluation, error) {
	var (
		id, loanID, customerID     string
		automaticScore, finalScore int
		manualScore                *int
		recommendation, riskLevel  string
		statusStr                  string
		evaluatorID, evaluatorName *string
		comments                   *string
		evaluationDate             time.Time
		completedDate              *time.Time
		version                    int
	)

	err := s.Scan(
		&id, &loanID, &customerID, &automaticScore, &manualScore, &finalScore,
		&recommendation, &riskLevel, &statusStr, &evaluatorID, &evaluatorName,
		&comments, &evaluationDate, &completedDate, &version,
	)
	if err != nil {
		return model.Evaluation{}, err
	}

	status, err := valueobject.NewEvaluationStatus(statusStr)
	if err != nil {
		return model.Evaluation{}, fmt.Errorf("parse evaluation status: %w", err)
	}

	return model.ReconstructEvaluation(
		id, loanID, customerID,
		automaticScore, manualScore, finalScore,
		valueobject.Recommendation(recommendation),
		valueobject.RiskLevel(riskLevel),
		status,
		deref(evaluatorID), deref(evaluatorName), deref(comments),
		evaluationDate, completedDate, version,
	), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
