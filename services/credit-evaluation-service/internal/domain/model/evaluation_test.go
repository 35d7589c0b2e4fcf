package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/event"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/valueobject"
)

func TestNewEvaluation(t *testing.T) {
	now := time.Now().UTC()

	t.Run("high score completes immediately with approve", func(t *testing.T) {
		ev, err := model.NewEvaluation("loan-001", "customer-001", 82, now)

		require.NoError(t, err)
		assert.Equal(t, valueobject.RecommendationApprove, ev.Recommendation())
		assert.Equal(t, valueobject.RiskLow, ev.RiskLevel())
		assert.Equal(t, "APPROVED", ev.Status().String())
		assert.NotNil(t, ev.CompletedDate())

		require.Len(t, ev.DomainEvents(), 1)
		completed, ok := ev.DomainEvents()[0].(event.EvaluationCompleted)
		require.True(t, ok)
		assert.Equal(t, 82, completed.FinalScore)
		assert.Equal(t, "loan-001", completed.PartitionKey())
	})

	t.Run("low score completes immediately with reject", func(t *testing.T) {
		ev, err := model.NewEvaluation("loan-002", "customer-001", 30, now)

		require.NoError(t, err)
		assert.Equal(t, valueobject.RecommendationReject, ev.Recommendation())
		assert.Equal(t, valueobject.RiskHigh, ev.RiskLevel())
		assert.Equal(t, "APPROVED", ev.Status().String())
		assert.Len(t, ev.DomainEvents(), 1)
	})

	t.Run("mid score parks in review without event", func(t *testing.T) {
		ev, err := model.NewEvaluation("loan-003", "customer-001", 60, now)

		require.NoError(t, err)
		assert.Equal(t, valueobject.RecommendationManualReview, ev.Recommendation())
		assert.Equal(t, "IN_REVIEW", ev.Status().String())
		assert.Nil(t, ev.CompletedDate())
		assert.Empty(t, ev.DomainEvents())
	})

	t.Run("score 50 boundary is manual review", func(t *testing.T) {
		ev, err := model.NewEvaluation("loan-004", "customer-001", 50, now)

		require.NoError(t, err)
		assert.Equal(t, valueobject.RecommendationManualReview, ev.Recommendation())
	})
}

func TestEvaluationCompleteManual(t *testing.T) {
	now := time.Now().UTC()

	t.Run("floor-averages automatic and manual scores", func(t *testing.T) {
		ev, err := model.NewEvaluation("loan-001", "customer-001", 60, now)
		require.NoError(t, err)

		done, err := ev.CompleteManual(40, "rev-1", "Ana Reyes", "thin file, borderline income", now)

		require.NoError(t, err)
		assert.Equal(t, 50, done.FinalScore())
		// 50 stays inclusive for manual review even after blending
		assert.Equal(t, valueobject.RecommendationManualReview, done.Recommendation())
		assert.Equal(t, "APPROVED", done.Status().String())
		require.NotNil(t, done.ManualScore())
		assert.Equal(t, 40, *done.ManualScore())
		assert.Equal(t, "Ana Reyes", done.EvaluatorName())

		require.Len(t, done.DomainEvents(), 1)
		completed, ok := done.DomainEvents()[0].(event.EvaluationCompleted)
		require.True(t, ok)
		assert.Equal(t, 50, completed.FinalScore)
	})

	t.Run("odd sum floors toward zero", func(t *testing.T) {
		ev, err := model.NewEvaluation("loan-002", "customer-001", 55, now)
		require.NoError(t, err)

		done, err := ev.CompleteManual(90, "rev-1", "Ana Reyes", "", now)

		require.NoError(t, err)
		assert.Equal(t, 72, done.FinalScore())
	})

	t.Run("only in-review evaluations accept manual completion", func(t *testing.T) {
		ev, err := model.NewEvaluation("loan-003", "customer-001", 90, now)
		require.NoError(t, err)

		_, err = ev.CompleteManual(80, "rev-1", "Ana Reyes", "", now)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("manual score out of range is rejected", func(t *testing.T) {
		ev, err := model.NewEvaluation("loan-004", "customer-001", 60, now)
		require.NoError(t, err)

		_, err = ev.CompleteManual(120, "rev-1", "Ana Reyes", "", now)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}
