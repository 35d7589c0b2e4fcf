package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/port"
)

// CreateLoanUseCase registers a loan application. The customer lookup is a
// display concern here, so an unavailable customer service degrades to a
// placeholder rather than failing the application.
type CreateLoanUseCase struct {
	loans     port.LoanRepository
	products  port.LoanProductRepository
	customers port.CustomerDirectory
	logger    *slog.Logger
}

// NewCreateLoanUseCase wires dependencies.
func NewCreateLoanUseCase(
	loans port.LoanRepository,
	products port.LoanProductRepository,
	customers port.CustomerDirectory,
	logger *slog.Logger,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{loans: loans, products: products, customers: customers, logger: logger}
}

// Execute validates the request against the product and persists a PENDING
// loan; loan.created goes out through the outbox in the same transaction.
func (uc *CreateLoanUseCase) Execute(ctx context.Context, req dto.CreateLoanRequest) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	// 1. Resolve the customer; degrade on dependency failure.
	customer, err := uc.customers.GetCustomer(ctx, req.CustomerID)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return dto.LoanResponse{}, apperr.Validation("customer %s not found", req.CustomerID)
	case errors.Is(err, apperr.ErrDependencyUnavailable):
		uc.logger.Warn("customer lookup degraded", "customer_id", req.CustomerID, "error", err)
		customer = degradedCustomer(req.CustomerID)
	case err != nil:
		return dto.LoanResponse{}, fmt.Errorf("get customer: %w", err)
	}

	// 2. Fetch the product and build the aggregate against its constraints.
	product, err := uc.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find product: %w", err)
	}

	loan, err := model.NewLoan(req.CustomerID, product, req.Amount, req.TermMonths, req.Purpose, now)
	if err != nil {
		return dto.LoanResponse{}, err
	}

	// 3. Persist aggregate and outbox entries atomically.
	if err := uc.loans.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	resp := dto.ToLoanResponse(loan)
	resp.CustomerName = customer.FirstName + " " + customer.LastName
	return resp, nil
}

func degradedCustomer(id string) port.CustomerSummary {
	return port.CustomerSummary{
		ID:        id,
		FirstName: "N/A",
		LastName:  "— service unavailable",
	}
}
