package port

import (
	"context"

	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/domain/model"
)

// CustomerRepository stores customer profiles. Create persists the profile
// and its initial credit history in one transaction; a duplicate dni or
// email surfaces as Conflict.
type CustomerRepository interface {
	Create(ctx context.Context, customer model.Customer, history model.CreditHistory) error
	Update(ctx context.Context, customer model.Customer) error
	FindByID(ctx context.Context, id string) (model.Customer, error)
	FindByDNI(ctx context.Context, dni string) (model.Customer, error)
	FindAll(ctx context.Context) ([]model.Customer, error)
}

// CreditHistoryRepository reads the per-customer lending track record.
type CreditHistoryRepository interface {
	FindByCustomer(ctx context.Context, customerID string) (model.CreditHistory, error)
}
