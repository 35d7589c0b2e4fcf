package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/resilience"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/model"
)

// CustomerClient implements port.CustomerDirectory. Scoring needs real
// snapshots, so there is no degraded fallback here: breaker and transport
// failures surface as DependencyUnavailable and the caller fails.
type CustomerClient struct {
	baseURL string
	client  *http.Client
	breaker *resilience.Breaker
}

// NewCustomerClient creates a snapshot client.
func NewCustomerClient(baseURL string, breaker *resilience.Breaker) *CustomerClient {
	return &CustomerClient{
		baseURL: baseURL,
		client:  &http.Client{},
		breaker: breaker,
	}
}

type customerPayload struct {
	ID                  string              `json:"id"`
	FirstName           string              `json:"firstName"`
	LastName            string              `json:"lastName"`
	MonthlyIncome       decimal.NullDecimal `json:"monthlyIncome"`
	WorkExperienceYears *int                `json:"workExperienceYears"`
}

type creditHistoryPayload struct {
	CustomerID     string          `json:"customerId"`
	CreditScore    *int            `json:"creditScore"`
	TotalDebt      decimal.Decimal `json:"totalDebt"`
	ActiveLoans    int             `json:"activeLoans"`
	CompletedLoans int             `json:"completedLoans"`
	DefaultedLoans int             `json:"defaultedLoans"`
}

// GetCustomer fetches the customer snapshot.
func (c *CustomerClient) GetCustomer(ctx context.Context, id string) (model.CustomerSnapshot, error) {
	var payload customerPayload
	if err := c.get(ctx, fmt.Sprintf("%s/api/customers/%s", c.baseURL, id), &payload); err != nil {
		return model.CustomerSnapshot{}, err
	}
	return model.CustomerSnapshot{
		ID:                  payload.ID,
		FirstName:           payload.FirstName,
		LastName:            payload.LastName,
		MonthlyIncome:       payload.MonthlyIncome,
		WorkExperienceYears: payload.WorkExperienceYears,
	}, nil
}

// GetCreditHistory fetches the credit record snapshot.
func (c *CustomerClient) GetCreditHistory(ctx context.Context, customerID string) (model.CreditHistorySnapshot, error) {
	var payload creditHistoryPayload
	if err := c.get(ctx, fmt.Sprintf("%s/api/customers/%s/credit-history", c.baseURL, customerID), &payload); err != nil {
		return model.CreditHistorySnapshot{}, err
	}
	return model.CreditHistorySnapshot{
		CustomerID:     payload.CustomerID,
		CreditScore:    payload.CreditScore,
		TotalDebt:      payload.TotalDebt,
		ActiveLoans:    payload.ActiveLoans,
		CompletedLoans: payload.CompletedLoans,
		DefaultedLoans: payload.DefaultedLoans,
	}, nil
}

func (c *CustomerClient) get(ctx context.Context, url string, out any) error {
	return c.breaker.Do(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return apperr.NotFound("customer resource not found: %s", url)
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("customer service returned %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(out)
	})
}
