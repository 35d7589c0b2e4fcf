// Package resilience wraps synchronous collaborator calls in a circuit
// breaker with a bounded timeout. The caller decides per call site whether
// a failure degrades to a fallback value or propagates as
// apperr.ErrDependencyUnavailable.
package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
)

// Breaker guards calls to one named dependency.
type Breaker struct {
	cb      *gobreaker.CircuitBreaker
	timeout time.Duration
}

// New creates a breaker that opens after five consecutive failures and
// half-opens after 30 seconds. callTimeout bounds each guarded call; zero
// defaults to five seconds. No operation blocks indefinitely.
func New(name string, callTimeout time.Duration) *Breaker {
	if callTimeout <= 0 {
		callTimeout = 5 * time.Second
	}
	return &Breaker{
		timeout: callTimeout,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 3,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			IsSuccessful: func(err error) bool {
				return err == nil || isBusinessError(err)
			},
		}),
	}
}

// Do runs fn under the breaker with the bounded timeout. Business errors
// (not-found, validation, conflict) pass through untouched and do not count
// against the circuit; open-circuit and call failures come back as
// ErrDependencyUnavailable so call sites have a single kind to branch on.
func (b *Breaker) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := b.cb.Execute(func() (any, error) {
		callCtx, cancel := context.WithTimeout(ctx, b.timeout)
		defer cancel()
		return nil, fn(callCtx)
	})
	switch {
	case err == nil:
		return nil
	case isBusinessError(err):
		return err
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		return apperr.DependencyUnavailable("%s: circuit open", b.cb.Name())
	default:
		return apperr.DependencyUnavailable("%s: %v", b.cb.Name(), err)
	}
}

func isBusinessError(err error) bool {
	return errors.Is(err, apperr.ErrNotFound) ||
		errors.Is(err, apperr.ErrValidation) ||
		errors.Is(err, apperr.ErrConflict)
}
