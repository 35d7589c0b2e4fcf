package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	pgshared "github.com/PatriickRM/loan-banking-system/pkg/postgres"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/domain/model"
)

const customerColumns = `
	id, dni, first_name, last_name, email, phone, date_of_birth, address,
	city, country, monthly_income, work_experience_years, occupation,
	employer_name, created_at, updated_at
`

// CustomerRepo implements port.CustomerRepository.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepo creates a PostgreSQL-backed customer repository.
func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// Create inserts the profile and its initial credit history in one
// transaction. Unique violations on dni or email map to Conflict.
func (r *CustomerRepo) Create(ctx context.Context, c model.Customer, h model.CreditHistory) error {
	err := pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO customers (`+customerColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		`, c.ID, c.DNI, c.FirstName, c.LastName, c.Email, nullable(c.Phone),
			c.DateOfBirth, nullable(c.Address), nullable(c.City), nullable(c.Country),
			c.MonthlyIncome, c.WorkExperienceYears, nullable(c.Occupation),
			nullable(c.EmployerName), c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO credit_history (customer_id, credit_score, total_debt,
				active_loans, completed_loans, defaulted_loans, last_updated)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, h.CustomerID, h.CreditScore, h.TotalDebt, h.ActiveLoans,
			h.CompletedLoans, h.DefaultedLoans, h.LastUpdated)
		if err != nil {
			return fmt.Errorf("insert credit history: %w", err)
		}
		return nil
	})
	if isUniqueViolation(err) {
		return apperr.Conflict("customer with this dni or email already exists")
	}
	return err
}

// Update rewrites the mutable profile fields.
func (r *CustomerRepo) Update(ctx context.Context, c model.Customer) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE customers
		SET first_name = $2, last_name = $3, email = $4, phone = $5,
			address = $6, city = $7, monthly_income = $8,
			work_experience_years = $9, occupation = $10, employer_name = $11,
			updated_at = $12
		WHERE id = $1
	`, c.ID, c.FirstName, c.LastName, c.Email, nullable(c.Phone),
		nullable(c.Address), nullable(c.City), c.MonthlyIncome,
		c.WorkExperienceYears, nullable(c.Occupation),
		nullable(c.EmployerName), c.UpdatedAt)
	if isUniqueViolation(err) {
		return apperr.Conflict("customer with this email already exists")
	}
	if err != nil {
		return fmt.Errorf("update customer %s: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("customer %s not found", c.ID)
	}
	return nil
}

// FindByID returns a single profile.
func (r *CustomerRepo) FindByID(ctx context.Context, id string) (model.Customer, error) {
	return r.findOne(ctx, `
		SELECT `+customerColumns+` FROM customers WHERE id = $1
	`, id, "customer %s not found", id)
}

// FindByDNI returns the profile registered under a national id.
func (r *CustomerRepo) FindByDNI(ctx context.Context, dni string) (model.Customer, error) {
	return r.findOne(ctx, `
		SELECT `+customerColumns+` FROM customers WHERE dni = $1
	`, dni, "customer with dni %s not found", dni)
}

// FindAll lists every profile ordered by registration time.
func (r *CustomerRepo) FindAll(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+customerColumns+` FROM customers ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepo) findOne(ctx context.Context, query, arg, notFoundFormat string, notFoundArg any) (model.Customer, error) {
	row := r.pool.QueryRow(ctx, query, arg)

	c, err := scanCustomer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Customer{}, apperr.NotFound(notFoundFormat, notFoundArg)
	}
	if err != nil {
		return model.Customer{}, fmt.Errorf("find customer: %w", err)
	}
	return c, nil
}

func scanCustomer(row scannable) (model.Customer, error) {
	var (
		c                             model.Customer
		phone, address, city, country *string
		occupation, employer          *string
	)
	err := row.Scan(&c.ID, &c.DNI, &c.FirstName, &c.LastName, &c.Email,
		&phone, &c.DateOfBirth, &address, &city, &country, &c.MonthlyIncome,
		&c.WorkExperienceYears, &occupation, &employer, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return model.Customer{}, err
	}

	c.Phone = deref(phone)
	c.Address = deref(address)
	c.City = deref(city)
	c.Country = deref(country)
	c.Occupation = deref(occupation)
	c.EmployerName = deref(employer)
	return c, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
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
