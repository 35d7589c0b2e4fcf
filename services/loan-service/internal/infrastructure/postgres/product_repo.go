package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/model"
)

const productColumns = `
	id, name, min_amount, max_amount, min_term_months, max_term_months,
	interest_rate, requires_collateral, active
`

// ProductRepo implements port.LoanProductRepository over the seeded catalog.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepo creates a PostgreSQL-backed product repository.
func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// FindByID retrieves a product by id.
func (r *ProductRepo) FindByID(ctx context.Context, id string) (model.LoanProduct, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM loan_products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LoanProduct{}, apperr.NotFound("loan product %s not found", id)
	}
	return p, err
}

// FindAllActive retrieves the active catalog.
func (r *ProductRepo) FindAllActive(ctx context.Context) ([]model.LoanProduct, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM loan_products WHERE active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query loan products: %w", err)
	}
	defer rows.Close()

	var result []model.LoanProduct
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func scanProduct(s scannable) (model.LoanProduct, error) {
	var p model.LoanProduct
	err := s.Scan(
		&p.ID, &p.Name, &p.MinAmount, &p.MaxAmount,
		&p.MinTermMonths, &p.MaxTermMonths,
		&p.InterestRate, &p.RequiresCollateral, &p.Active,
	)
	if err != nil {
		return model.LoanProduct{}, err
	}
	return p, nil
}
