package port

import (
	"context"

	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/valueobject"
)

// LoanRepository persists loan aggregates together with their recorded
// domain events as outbox entries, in one transaction.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	// SaveAppliedPayment saves the loan and records the payment id in the
	// dedup table. Returns false without saving when the payment id was
	// already applied.
	SaveAppliedPayment(ctx context.Context, loan model.Loan, paymentID string) (bool, error)
	FindByID(ctx context.Context, id string) (model.Loan, error)
	FindByCustomer(ctx context.Context, customerID string) ([]model.Loan, error)
	FindByStatus(ctx context.Context, status valueobject.LoanStatus) ([]model.Loan, error)
}

// LoanProductRepository reads the loan product catalog.
type LoanProductRepository interface {
	FindByID(ctx context.Context, id string) (model.LoanProduct, error)
	FindAllActive(ctx context.Context) ([]model.LoanProduct, error)
}

// CustomerSummary is the slice of customer data the loan service displays.
type CustomerSummary struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

// CustomerDirectory looks up customers in the customer service.
type CustomerDirectory interface {
	GetCustomer(ctx context.Context, id string) (CustomerSummary, error)
}
