package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
)

func TestTaxonomy(t *testing.T) {
	err := apperr.Conflict("evaluation already exists for loan %s", "loan-1")

	assert.True(t, errors.Is(err, apperr.ErrConflict))
	assert.False(t, errors.Is(err, apperr.ErrValidation))
	assert.Contains(t, err.Error(), "loan-1")

	// Wrapping preserves the kind.
	wrapped := fmt.Errorf("create evaluation: %w", err)
	assert.True(t, errors.Is(wrapped, apperr.ErrConflict))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.Validation("amount out of range"), http.StatusBadRequest},
		{apperr.NotFound("loan missing"), http.StatusNotFound},
		{apperr.Conflict("duplicate"), http.StatusConflict},
		{apperr.DependencyUnavailable("customer service down"), http.StatusServiceUnavailable},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, apperr.HTTPStatus(tc.err), tc.err.Error())
	}
}
