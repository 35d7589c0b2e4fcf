package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PatriickRM/loan-banking-system/pkg/observability"
)

func TestInitLogger(t *testing.T) {
	logger := observability.InitLogger(observability.LogConfig{Level: "debug", Format: "json"})
	assert.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), -4)) // debug

	logger = observability.InitLogger(observability.LogConfig{Level: "bogus", Format: "text"})
	assert.False(t, logger.Enabled(context.Background(), -4)) // falls back to info
}
