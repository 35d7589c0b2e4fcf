package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
)

// Customer is the profile record the lending saga resolves names and
// income data from. It is reference data with no state machine, so the
// fields stay exported.
type Customer struct {
	ID                  string
	DNI                 string
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	DateOfBirth         time.Time
	Address             string
	City                string
	Country             string
	MonthlyIncome       decimal.NullDecimal
	WorkExperienceYears *int
	Occupation          string
	EmployerName        string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewCustomer validates and builds a customer profile.
func NewCustomer(
	dni, firstName, lastName, email, phone string,
	dateOfBirth time.Time,
	address, city, country string,
	monthlyIncome decimal.NullDecimal,
	workExperienceYears *int,
	occupation, employerName string,
	now time.Time,
) (Customer, error) {
	switch {
	case strings.TrimSpace(dni) == "":
		return Customer{}, apperr.Validation("dni is required")
	case strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "":
		return Customer{}, apperr.Validation("first and last name are required")
	case !strings.Contains(email, "@"):
		return Customer{}, apperr.Validation("invalid email %q", email)
	case dateOfBirth.IsZero() || !dateOfBirth.Before(now):
		return Customer{}, apperr.Validation("date of birth must be in the past")
	}
	if monthlyIncome.Valid && monthlyIncome.Decimal.IsNegative() {
		return Customer{}, apperr.Validation("monthly income cannot be negative")
	}
	if workExperienceYears != nil && *workExperienceYears < 0 {
		return Customer{}, apperr.Validation("work experience cannot be negative")
	}

	return Customer{
		ID:                  uuid.New().String(),
		DNI:                 strings.TrimSpace(dni),
		FirstName:           strings.TrimSpace(firstName),
		LastName:            strings.TrimSpace(lastName),
		Email:               strings.ToLower(strings.TrimSpace(email)),
		Phone:               phone,
		DateOfBirth:         dateOfBirth,
		Address:             address,
		City:                city,
		Country:             country,
		MonthlyIncome:       monthlyIncome,
		WorkExperienceYears: workExperienceYears,
		Occupation:          occupation,
		EmployerName:        employerName,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// initialCreditScore is the score assigned to a customer with no history.
const initialCreditScore = 300

// CreditHistory aggregates a customer's lending track record, one row per
// customer. The loan lifecycle updates it out of band; the scoring engine
// reads it as a snapshot.
type CreditHistory struct {
	CustomerID     string
	CreditScore    *int
	TotalDebt      decimal.Decimal
	ActiveLoans    int
	CompletedLoans int
	DefaultedLoans int
	LastUpdated    time.Time
}

// NewInitialCreditHistory creates the empty history every registration
// starts with.
func NewInitialCreditHistory(customerID string, now time.Time) CreditHistory {
	score := initialCreditScore
	return CreditHistory{
		CustomerID:  customerID,
		CreditScore: &score,
		TotalDebt:   decimal.Zero,
		LastUpdated: now,
	}
}
