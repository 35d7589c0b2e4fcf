package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/domain/model"
)

// RegisterCustomerRequest creates a customer profile with its initial
// credit history.
type RegisterCustomerRequest struct {
	DNI                 string              `json:"dni"`
	FirstName           string              `json:"firstName"`
	LastName            string              `json:"lastName"`
	Email               string              `json:"email"`
	Phone               string              `json:"phone"`
	DateOfBirth         time.Time           `json:"dateOfBirth"`
	Address             string              `json:"address"`
	City                string              `json:"city"`
	Country             string              `json:"country"`
	MonthlyIncome       decimal.NullDecimal `json:"monthlyIncome"`
	WorkExperienceYears *int                `json:"workExperienceYears"`
	Occupation          string              `json:"occupation"`
	EmployerName        string              `json:"employerName"`
}

// UpdateCustomerRequest updates the mutable profile fields. DNI and date
// of birth are identity data and stay fixed.
type UpdateCustomerRequest struct {
	FirstName           string              `json:"firstName"`
	LastName            string              `json:"lastName"`
	Email               string              `json:"email"`
	Phone               string              `json:"phone"`
	Address             string              `json:"address"`
	City                string              `json:"city"`
	MonthlyIncome       decimal.NullDecimal `json:"monthlyIncome"`
	WorkExperienceYears *int                `json:"workExperienceYears"`
	Occupation          string              `json:"occupation"`
	EmployerName        string              `json:"employerName"`
}

// CustomerResponse is the profile representation peer services consume:
// the loan service reads names, the evaluation service reads
// monthlyIncome and workExperienceYears.
type CustomerResponse struct {
	ID                  string              `json:"id"`
	DNI                 string              `json:"dni"`
	FirstName           string              `json:"firstName"`
	LastName            string              `json:"lastName"`
	Email               string              `json:"email"`
	Phone               string              `json:"phone,omitempty"`
	DateOfBirth         time.Time           `json:"dateOfBirth"`
	Address             string              `json:"address,omitempty"`
	City                string              `json:"city,omitempty"`
	Country             string              `json:"country,omitempty"`
	MonthlyIncome       decimal.NullDecimal `json:"monthlyIncome"`
	WorkExperienceYears *int                `json:"workExperienceYears"`
	Occupation          string              `json:"occupation,omitempty"`
	EmployerName        string              `json:"employerName,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

// CreditHistoryResponse is the snapshot the scoring engine consumes.
type CreditHistoryResponse struct {
	CustomerID     string          `json:"customerId"`
	CreditScore    *int            `json:"creditScore"`
	TotalDebt      decimal.Decimal `json:"totalDebt"`
	ActiveLoans    int             `json:"activeLoans"`
	CompletedLoans int             `json:"completedLoans"`
	DefaultedLoans int             `json:"defaultedLoans"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}

// ToCustomerResponse maps a customer profile.
func ToCustomerResponse(c model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                  c.ID,
		DNI:                 c.DNI,
		FirstName:           c.FirstName,
		LastName:            c.LastName,
		Email:               c.Email,
		Phone:               c.Phone,
		DateOfBirth:         c.DateOfBirth,
		Address:             c.Address,
		City:                c.City,
		Country:             c.Country,
		MonthlyIncome:       c.MonthlyIncome,
		WorkExperienceYears: c.WorkExperienceYears,
		Occupation:          c.Occupation,
		EmployerName:        c.EmployerName,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

// ToCustomerResponses maps a slice of customers.
func ToCustomerResponses(customers []model.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, ToCustomerResponse(c))
	}
	return out
}

// ToCreditHistoryResponse maps a credit history row.
func ToCreditHistoryResponse(h model.CreditHistory) CreditHistoryResponse {
	return CreditHistoryResponse{
		CustomerID:     h.CustomerID,
		CreditScore:    h.CreditScore,
		TotalDebt:      h.TotalDebt,
		ActiveLoans:    h.ActiveLoans,
		CompletedLoans: h.CompletedLoans,
		DefaultedLoans: h.DefaultedLoans,
		LastUpdated:    h.LastUpdated,
	}
}
