package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/domain/port"
)

// UpdateCustomerUseCase changes the mutable fields of a profile.
type UpdateCustomerUseCase struct {
	customers port.CustomerRepository
	now       func() time.Time
	logger    *slog.Logger
}

func NewUpdateCustomerUseCase(customers port.CustomerRepository, logger *slog.Logger) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customers: customers,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

// Execute applies the update. Identity fields (dni, date of birth) are not
// touched.
func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, id string, req dto.UpdateCustomerRequest) (dto.CustomerResponse, error) {
	customer, err := uc.customers.FindByID(ctx, id)
	if err != nil {
		return dto.CustomerResponse{}, err
	}

	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return dto.CustomerResponse{}, apperr.Validation("first and last name are required")
	}
	if !strings.Contains(req.Email, "@") {
		return dto.CustomerResponse{}, apperr.Validation("invalid email %q", req.Email)
	}
	if req.MonthlyIncome.Valid && req.MonthlyIncome.Decimal.IsNegative() {
		return dto.CustomerResponse{}, apperr.Validation("monthly income cannot be negative")
	}
	if req.WorkExperienceYears != nil && *req.WorkExperienceYears < 0 {
		return dto.CustomerResponse{}, apperr.Validation("work experience cannot be negative")
	}

	customer.FirstName = strings.TrimSpace(req.FirstName)
	customer.LastName = strings.TrimSpace(req.LastName)
	customer.Email = strings.ToLower(strings.TrimSpace(req.Email))
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.City = req.City
	customer.MonthlyIncome = req.MonthlyIncome
	customer.WorkExperienceYears = req.WorkExperienceYears
	customer.Occupation = req.Occupation
	customer.EmployerName = req.EmployerName
	customer.UpdatedAt = uc.now()

	if err := uc.customers.Update(ctx, customer); err != nil {
		return dto.CustomerResponse{}, fmt.Errorf("updating customer %s: %w", id, err)
	}

	uc.logger.Info("customer updated", slog.String("customer_id", id))
	return dto.ToCustomerResponse(customer), nil
}
