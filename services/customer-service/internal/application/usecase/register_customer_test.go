package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/application/usecase"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/domain/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockCustomerRepository struct {
	createFunc    func(ctx context.Context, customer model.Customer, history model.CreditHistory) error
	updateFunc    func(ctx context.Context, customer model.Customer) error
	findByIDFunc  func(ctx context.Context, id string) (model.Customer, error)
	findByDNIFunc func(ctx context.Context, dni string) (model.Customer, error)
	findAllFunc   func(ctx context.Context) ([]model.Customer, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer model.Customer, history model.CreditHistory) error {
	return m.createFunc(ctx, customer, history)
}

func (m *mockCustomerRepository) Update(ctx context.Context, customer model.Customer) error {
	return m.updateFunc(ctx, customer)
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id string) (model.Customer, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockCustomerRepository) FindByDNI(ctx context.Context, dni string) (model.Customer, error) {
	return m.findByDNIFunc(ctx, dni)
}

func (m *mockCustomerRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	return m.findAllFunc(ctx)
}

func validRequest() dto.RegisterCustomerRequest {
	return dto.RegisterCustomerRequest{
		DNI:         "45879612",
		FirstName:   "Maria",
		LastName:    "Rodriguez",
		Email:       "maria.rodriguez@example.com",
		DateOfBirth: time.Date(1988, time.April, 12, 0, 0, 0, 0, time.UTC),
		MonthlyIncome: decimal.NullDecimal{
			Decimal: decimal.RequireFromString("6500.00"),
			Valid:   true,
		},
	}
}

func TestRegisterCustomerUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("registers the profile with an initial history", func(t *testing.T) {
		var savedHistory model.CreditHistory
		repo := &mockCustomerRepository{
			createFunc: func(_ context.Context, customer model.Customer, history model.CreditHistory) error {
				assert.Equal(t, customer.ID, history.CustomerID)
				savedHistory = history
				return nil
			},
		}

		uc := usecase.NewRegisterCustomerUseCase(repo, discardLogger())
		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "45879612", resp.DNI)
		require.NotNil(t, savedHistory.CreditScore)
		assert.Equal(t, 300, *savedHistory.CreditScore)
	})

	t.Run("duplicate dni surfaces as conflict", func(t *testing.T) {
		repo := &mockCustomerRepository{
			createFunc: func(_ context.Context, _ model.Customer, _ model.CreditHistory) error {
				return apperr.Conflict("customer with this dni or email already exists")
			},
		}

		uc := usecase.NewRegisterCustomerUseCase(repo, discardLogger())
		_, err := uc.Execute(ctx, validRequest())
		assert.True(t, errors.Is(err, apperr.ErrConflict))
	})

	t.Run("invalid profile never reaches the repository", func(t *testing.T) {
		repo := &mockCustomerRepository{
			createFunc: func(_ context.Context, _ model.Customer, _ model.CreditHistory) error {
				t.Fatal("must not persist an invalid profile")
				return nil
			},
		}

		req := validRequest()
		req.Email = "broken"
		uc := usecase.NewRegisterCustomerUseCase(repo, discardLogger())
		_, err := uc.Execute(ctx, req)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})
}
