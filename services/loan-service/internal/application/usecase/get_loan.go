package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/port"
)

// GetLoanUseCase reads a single loan and decorates it with the customer name.
type GetLoanUseCase struct {
	loans     port.LoanRepository
	customers port.CustomerDirectory
	logger    *slog.Logger
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loans port.LoanRepository, customers port.CustomerDirectory, logger *slog.Logger) *GetLoanUseCase {
	return &GetLoanUseCase{loans: loans, customers: customers, logger: logger}
}

// Execute returns the loan; customer lookup failures degrade to a placeholder.
func (uc *GetLoanUseCase) Execute(ctx context.Context, id string) (dto.LoanResponse, error) {
	loan, err := uc.loans.FindByID(ctx, id)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	resp := dto.ToLoanResponse(loan)
	customer, err := uc.customers.GetCustomer(ctx, loan.CustomerID())
	if err != nil {
		uc.logger.Warn("customer lookup degraded", "customer_id", loan.CustomerID(), "error", err)
		customer = degradedCustomer(loan.CustomerID())
	}
	resp.CustomerName = customer.FirstName + " " + customer.LastName
	return resp, nil
}
