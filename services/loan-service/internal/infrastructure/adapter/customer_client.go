package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/resilience"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/port"
)

// CustomerClient implements port.CustomerDirectory against the customer
// service REST API, wrapped in a circuit breaker with a bounded timeout.
type CustomerClient struct {
	baseURL string
	client  *http.Client
	breaker *resilience.Breaker
}

// NewCustomerClient creates a customer directory client.
func NewCustomerClient(baseURL string, breaker *resilience.Breaker) *CustomerClient {
	return &CustomerClient{
		baseURL: baseURL,
		client:  &http.Client{},
		breaker: breaker,
	}
}

type customerPayload struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// GetCustomer looks up a customer by id. A missing customer is NotFound;
// transport failures and open-breaker short circuits surface as
// DependencyUnavailable so callers can decide whether to degrade.
func (c *CustomerClient) GetCustomer(ctx context.Context, id string) (port.CustomerSummary, error) {
	var payload customerPayload
	err := c.breaker.Do(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			fmt.Sprintf("%s/api/customers/%s", c.baseURL, id), nil)
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
			return apperr.NotFound("customer %s not found", id)
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("customer service returned %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&payload)
	})
	if err != nil {
		return port.CustomerSummary{}, err
	}
	return port.CustomerSummary{
		ID:        payload.ID,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
	}, nil
}
