package usecase

import (
	"context"

	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/domain/port"
)

// QueryCustomersUseCase serves read-only profile and history lookups.
type QueryCustomersUseCase struct {
	customers port.CustomerRepository
	histories port.CreditHistoryRepository
}

func NewQueryCustomersUseCase(customers port.CustomerRepository, histories port.CreditHistoryRepository) *QueryCustomersUseCase {
	return &QueryCustomersUseCase{customers: customers, histories: histories}
}

// ByID returns a single profile.
func (uc *QueryCustomersUseCase) ByID(ctx context.Context, id string) (dto.CustomerResponse, error) {
	customer, err := uc.customers.FindByID(ctx, id)
	if err != nil {
		return dto.CustomerResponse{}, err
	}
	return dto.ToCustomerResponse(customer), nil
}

// ByDNI returns the profile registered under a national id.
func (uc *QueryCustomersUseCase) ByDNI(ctx context.Context, dni string) (dto.CustomerResponse, error) {
	customer, err := uc.customers.FindByDNI(ctx, dni)
	if err != nil {
		return dto.CustomerResponse{}, err
	}
	return dto.ToCustomerResponse(customer), nil
}

// All lists every profile.
func (uc *QueryCustomersUseCase) All(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.customers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToCustomerResponses(customers), nil
}

// CreditHistory returns the customer's lending track record.
func (uc *QueryCustomersUseCase) CreditHistory(ctx context.Context, customerID string) (dto.CreditHistoryResponse, error) {
	history, err := uc.histories.FindByCustomer(ctx, customerID)
	if err != nil {
		return dto.CreditHistoryResponse{}, err
	}
	return dto.ToCreditHistoryResponse(history), nil
}
