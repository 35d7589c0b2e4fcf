package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/resilience"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/domain/port"
)

// LoanClient implements port.LoanDirectory against the loan service REST
// API, wrapped in a circuit breaker with a bounded timeout.
type LoanClient struct {
	baseURL string
	client  *http.Client
	breaker *resilience.Breaker
}

// NewLoanClient creates a loan directory client.
func NewLoanClient(baseURL string, breaker *resilience.Breaker) *LoanClient {
	return &LoanClient{
		baseURL: baseURL,
		client:  &http.Client{},
		breaker: breaker,
	}
}

type loanPayload struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
}

// GetLoan looks up a loan by id. A missing loan is NotFound; transport
// failures and open-breaker short circuits surface as
// DependencyUnavailable.
func (c *LoanClient) GetLoan(ctx context.Context, id string) (port.LoanSummary, error) {
	var payload loanPayload
	err := c.breaker.Do(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			fmt.Sprintf("%s/api/loans/%s", c.baseURL, id), nil)
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
			return apperr.NotFound("loan %s not found", id)
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("loan service returned %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&payload)
	})
	if err != nil {
		return port.LoanSummary{}, err
	}
	return port.LoanSummary{ID: payload.ID, CustomerID: payload.CustomerID}, nil
}
