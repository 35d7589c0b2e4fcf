package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/domain/port"
)

// RegisterCustomerUseCase creates a customer profile together with its
// initial credit history.
type RegisterCustomerUseCase struct {
	customers port.CustomerRepository
	now       func() time.Time
	logger    *slog.Logger
}

func NewRegisterCustomerUseCase(customers port.CustomerRepository, logger *slog.Logger) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{
		customers: customers,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

// Execute registers a customer. Duplicate dni or email surfaces as
// Conflict from the repository's unique constraints.
func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, req dto.RegisterCustomerRequest) (dto.CustomerResponse, error) {
	now := uc.now()

	customer, err := model.NewCustomer(
		req.DNI, req.FirstName, req.LastName, req.Email, req.Phone,
		req.DateOfBirth, req.Address, req.City, req.Country,
		req.MonthlyIncome, req.WorkExperienceYears,
		req.Occupation, req.EmployerName, now)
	if err != nil {
		return dto.CustomerResponse{}, err
	}

	history := model.NewInitialCreditHistory(customer.ID, now)
	if err := uc.customers.Create(ctx, customer, history); err != nil {
		return dto.CustomerResponse{}, fmt.Errorf("creating customer: %w", err)
	}

	uc.logger.Info("customer registered",
		slog.String("customer_id", customer.ID),
		slog.String("dni", customer.DNI))
	return dto.ToCustomerResponse(customer), nil
}
