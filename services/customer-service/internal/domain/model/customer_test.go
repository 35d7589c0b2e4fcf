package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/domain/model"
)

func income(s string) decimal.NullDecimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func intPtr(v int) *int { return &v }

func TestNewCustomer(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	birth := time.Date(1990, time.March, 5, 0, 0, 0, 0, time.UTC)

	t.Run("builds a normalized profile", func(t *testing.T) {
		c, err := model.NewCustomer("  45879612 ", "Maria", "Rodriguez",
			" Maria.Rodriguez@Example.com ", "+51 987 654 321", birth,
			"Av. Principal 123", "Lima", "Peru", income("6500.00"), intPtr(8),
			"Accountant", "Acme SAC", now)
		require.NoError(t, err)

		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "45879612", c.DNI)
		assert.Equal(t, "maria.rodriguez@example.com", c.Email)
		assert.Equal(t, now, c.CreatedAt)
	})

	t.Run("rejects missing identity fields", func(t *testing.T) {
		_, err := model.NewCustomer("", "Maria", "Rodriguez", "m@example.com",
			"", birth, "", "", "", decimal.NullDecimal{}, nil, "", "", now)
		assert.True(t, errors.Is(err, apperr.ErrValidation))

		_, err = model.NewCustomer("45879612", "", "Rodriguez", "m@example.com",
			"", birth, "", "", "", decimal.NullDecimal{}, nil, "", "", now)
		assert.True(t, errors.Is(err, apperr.ErrValidation))

		_, err = model.NewCustomer("45879612", "Maria", "Rodriguez", "not-an-email",
			"", birth, "", "", "", decimal.NullDecimal{}, nil, "", "", now)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("rejects a future date of birth", func(t *testing.T) {
		_, err := model.NewCustomer("45879612", "Maria", "Rodriguez", "m@example.com",
			"", now.AddDate(1, 0, 0), "", "", "", decimal.NullDecimal{}, nil, "", "", now)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("rejects negative income and experience", func(t *testing.T) {
		_, err := model.NewCustomer("45879612", "Maria", "Rodriguez", "m@example.com",
			"", birth, "", "", "", income("-1"), nil, "", "", now)
		assert.True(t, errors.Is(err, apperr.ErrValidation))

		_, err = model.NewCustomer("45879612", "Maria", "Rodriguez", "m@example.com",
			"", birth, "", "", "", decimal.NullDecimal{}, intPtr(-2), "", "", now)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})
}

func TestNewInitialCreditHistory(t *testing.T) {
	now := time.Now().UTC()
	h := model.NewInitialCreditHistory("cust-1", now)

	assert.Equal(t, "cust-1", h.CustomerID)
	require.NotNil(t, h.CreditScore)
	assert.Equal(t, 300, *h.CreditScore)
	assert.True(t, h.TotalDebt.IsZero())
	assert.Equal(t, 0, h.ActiveLoans)
}
