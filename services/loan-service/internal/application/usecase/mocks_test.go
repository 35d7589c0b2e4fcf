package usecase_test

import (
	"context"

	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/port"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/valueobject"
)

type mockLoanRepository struct {
	saveFunc               func(ctx context.Context, loan model.Loan) error
	saveAppliedPaymentFunc func(ctx context.Context, loan model.Loan, paymentID string) (bool, error)
	findByIDFunc           func(ctx context.Context, id string) (model.Loan, error)
	findByCustomerFunc     func(ctx context.Context, customerID string) ([]model.Loan, error)
	findByStatusFunc       func(ctx context.Context, status valueobject.LoanStatus) ([]model.Loan, error)
}

func (m *mockLoanRepository) Save(ctx context.Context, loan model.Loan) error {
	return m.saveFunc(ctx, loan)
}

func (m *mockLoanRepository) SaveAppliedPayment(ctx context.Context, loan model.Loan, paymentID string) (bool, error) {
	return m.saveAppliedPaymentFunc(ctx, loan, paymentID)
}

func (m *mockLoanRepository) FindByID(ctx context.Context, id string) (model.Loan, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockLoanRepository) FindByCustomer(ctx context.Context, customerID string) ([]model.Loan, error) {
	return m.findByCustomerFunc(ctx, customerID)
}

func (m *mockLoanRepository) FindByStatus(ctx context.Context, status valueobject.LoanStatus) ([]model.Loan, error) {
	return m.findByStatusFunc(ctx, status)
}

type mockProductRepository struct {
	findByIDFunc      func(ctx context.Context, id string) (model.LoanProduct, error)
	findAllActiveFunc func(ctx context.Context) ([]model.LoanProduct, error)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id string) (model.LoanProduct, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockProductRepository) FindAllActive(ctx context.Context) ([]model.LoanProduct, error) {
	return m.findAllActiveFunc(ctx)
}

type mockCustomerDirectory struct {
	getCustomerFunc func(ctx context.Context, id string) (port.CustomerSummary, error)
}

func (m *mockCustomerDirectory) GetCustomer(ctx context.Context, id string) (port.CustomerSummary, error) {
	return m.getCustomerFunc(ctx, id)
}
