package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/application/usecase"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/model"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/service"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/domain/valueobject"
)

type mockEvaluationRepository struct {
	saveFunc         func(ctx context.Context, ev model.Evaluation, details []model.CriterionScore) error
	findByIDFunc     func(ctx context.Context, id string) (model.Evaluation, error)
	findByLoanIDFunc func(ctx context.Context, loanID string) (model.Evaluation, error)
	findByStatusFunc func(ctx context.Context, status valueobject.EvaluationStatus) ([]model.Evaluation, error)
	findDetailsFunc  func(ctx context.Context, evaluationID string) ([]model.CriterionScore, error)
}

func (m *mockEvaluationRepository) Save(ctx context.Context, ev model.Evaluation, details []model.CriterionScore) error {
	return m.saveFunc(ctx, ev, details)
}

func (m *mockEvaluationRepository) FindByID(ctx context.Context, id string) (model.Evaluation, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockEvaluationRepository) FindByLoanID(ctx context.Context, loanID string) (model.Evaluation, error) {
	return m.findByLoanIDFunc(ctx, loanID)
}

func (m *mockEvaluationRepository) FindByStatus(ctx context.Context, status valueobject.EvaluationStatus) ([]model.Evaluation, error) {
	return m.findByStatusFunc(ctx, status)
}

func (m *mockEvaluationRepository) FindDetails(ctx context.Context, evaluationID string) ([]model.CriterionScore, error) {
	return m.findDetailsFunc(ctx, evaluationID)
}

type mockCriterionRepository struct {
	findActiveFunc func(ctx context.Context) ([]model.EvaluationCriterion, error)
	findAllFunc    func(ctx context.Context) ([]model.EvaluationCriterion, error)
	updateFunc     func(ctx context.Context, criterion model.EvaluationCriterion) error
}

func (m *mockCriterionRepository) FindActive(ctx context.Context) ([]model.EvaluationCriterion, error) {
	return m.findActiveFunc(ctx)
}

func (m *mockCriterionRepository) FindAll(ctx context.Context) ([]model.EvaluationCriterion, error) {
	return m.findAllFunc(ctx)
}

func (m *mockCriterionRepository) Update(ctx context.Context, criterion model.EvaluationCriterion) error {
	return m.updateFunc(ctx, criterion)
}

type mockCustomerDirectory struct {
	getCustomerFunc      func(ctx context.Context, id string) (model.CustomerSnapshot, error)
	getCreditHistoryFunc func(ctx context.Context, customerID string) (model.CreditHistorySnapshot, error)
}

func (m *mockCustomerDirectory) GetCustomer(ctx context.Context, id string) (model.CustomerSnapshot, error) {
	return m.getCustomerFunc(ctx, id)
}

func (m *mockCustomerDirectory) GetCreditHistory(ctx context.Context, customerID string) (model.CreditHistorySnapshot, error) {
	return m.getCreditHistoryFunc(ctx, customerID)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int { return &v }

func testNow() time.Time { return time.Now().UTC() }

func activeCriteria() []model.EvaluationCriterion {
	return []model.EvaluationCriterion{
		{ID: "c1", Name: "Monthly Income", Weight: decimal.NewFromInt(30), Active: true},
		{ID: "c2", Name: "Credit History", Weight: decimal.NewFromInt(25), Active: true},
		{ID: "c3", Name: "Payment Capacity", Weight: decimal.NewFromInt(30), Active: true},
		{ID: "c4", Name: "Work Experience", Weight: decimal.NewFromInt(15), Active: true},
	}
}

func TestCreateEvaluationUseCase_Execute(t *testing.T) {
	evt := usecase.LoanCreated{LoanID: "loan-001", CustomerID: "customer-001"}

	noExisting := func(_ context.Context, loanID string) (model.Evaluation, error) {
		return model.Evaluation{}, apperr.NotFound("evaluation for loan %s not found", loanID)
	}

	t.Run("scores and approves a strong customer", func(t *testing.T) {
		var savedDetails []model.CriterionScore
		var saved model.Evaluation
		evalRepo := &mockEvaluationRepository{
			findByLoanIDFunc: noExisting,
			saveFunc: func(_ context.Context, ev model.Evaluation, details []model.CriterionScore) error {
				saved = ev
				savedDetails = details
				return nil
			},
		}
		criteria := &mockCriterionRepository{
			findActiveFunc: func(context.Context) ([]model.EvaluationCriterion, error) {
				return activeCriteria(), nil
			},
		}
		customers := &mockCustomerDirectory{
			getCustomerFunc: func(_ context.Context, id string) (model.CustomerSnapshot, error) {
				return model.CustomerSnapshot{
					ID:                  id,
					MonthlyIncome:       decimal.NewNullDecimal(decimal.NewFromInt(12000)),
					WorkExperienceYears: intPtr(12),
				}, nil
			},
			getCreditHistoryFunc: func(_ context.Context, customerID string) (model.CreditHistorySnapshot, error) {
				return model.CreditHistorySnapshot{
					CustomerID:     customerID,
					CreditScore:    intPtr(800),
					TotalDebt:      decimal.NewFromInt(2000),
					CompletedLoans: 3,
				}, nil
			},
		}

		uc := usecase.NewCreateEvaluationUseCase(evalRepo, criteria, customers, service.NewScoringEngine(), discardLogger())
		resp, err := uc.Execute(context.Background(), evt)

		require.NoError(t, err)
		assert.Equal(t, 100, resp.FinalScore)
		assert.Equal(t, "APPROVE", resp.Recommendation)
		assert.Equal(t, "LOW", resp.RiskLevel)
		assert.Equal(t, "APPROVED", resp.Status)
		assert.Len(t, savedDetails, 4)
		assert.Len(t, saved.DomainEvents(), 1)
	})

	t.Run("duplicate loan id conflicts", func(t *testing.T) {
		existing, err := model.NewEvaluation("loan-001", "customer-001", 80, testNow())
		require.NoError(t, err)

		evalRepo := &mockEvaluationRepository{
			findByLoanIDFunc: func(context.Context, string) (model.Evaluation, error) {
				return existing, nil
			},
		}

		uc := usecase.NewCreateEvaluationUseCase(evalRepo, &mockCriterionRepository{}, &mockCustomerDirectory{}, service.NewScoringEngine(), discardLogger())
		_, err = uc.Execute(context.Background(), evt)

		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("unavailable customer service fails the evaluation", func(t *testing.T) {
		evalRepo := &mockEvaluationRepository{findByLoanIDFunc: noExisting}
		customers := &mockCustomerDirectory{
			getCustomerFunc: func(context.Context, string) (model.CustomerSnapshot, error) {
				return model.CustomerSnapshot{}, apperr.DependencyUnavailable("customer service down")
			},
		}

		uc := usecase.NewCreateEvaluationUseCase(evalRepo, &mockCriterionRepository{}, customers, service.NewScoringEngine(), discardLogger())
		_, err := uc.Execute(context.Background(), evt)

		assert.ErrorIs(t, err, apperr.ErrDependencyUnavailable)
	})

	t.Run("mid score parks in review", func(t *testing.T) {
		var saved model.Evaluation
		evalRepo := &mockEvaluationRepository{
			findByLoanIDFunc: noExisting,
			saveFunc: func(_ context.Context, ev model.Evaluation, _ []model.CriterionScore) error {
				saved = ev
				return nil
			},
		}
		criteria := &mockCriterionRepository{
			findActiveFunc: func(context.Context) ([]model.EvaluationCriterion, error) {
				return activeCriteria(), nil
			},
		}
		customers := &mockCustomerDirectory{
			getCustomerFunc: func(_ context.Context, id string) (model.CustomerSnapshot, error) {
				return model.CustomerSnapshot{
					ID:                  id,
					MonthlyIncome:       decimal.NewNullDecimal(decimal.NewFromInt(6000)),
					WorkExperienceYears: intPtr(4),
				}, nil
			},
			getCreditHistoryFunc: func(_ context.Context, customerID string) (model.CreditHistorySnapshot, error) {
				return model.CreditHistorySnapshot{
					CustomerID: customerID,
					TotalDebt:  decimal.NewFromInt(1800),
				}, nil
			},
		}

		uc := usecase.NewCreateEvaluationUseCase(evalRepo, criteria, customers, service.NewScoringEngine(), discardLogger())
		resp, err := uc.Execute(context.Background(), evt)

		require.NoError(t, err)
		assert.Equal(t, "MANUAL_REVIEW", resp.Recommendation)
		assert.Equal(t, "IN_REVIEW", resp.Status)
		assert.Empty(t, saved.DomainEvents())
	})
}

func TestCompleteManualUseCase_Execute(t *testing.T) {
	t.Run("completes an in-review evaluation", func(t *testing.T) {
		ev, err := model.NewEvaluation("loan-001", "customer-001", 60, testNow())
		require.NoError(t, err)

		var saved model.Evaluation
		evalRepo := &mockEvaluationRepository{
			findByIDFunc: func(context.Context, string) (model.Evaluation, error) { return ev, nil },
			saveFunc: func(_ context.Context, e model.Evaluation, details []model.CriterionScore) error {
				saved = e
				assert.Nil(t, details)
				return nil
			},
		}

		uc := usecase.NewCompleteManualUseCase(evalRepo)
		resp, err := uc.Execute(context.Background(), ev.ID(), dto.ManualEvaluationRequest{
			ManualScore:   80,
			EvaluatorID:   "rev-1",
			EvaluatorName: "Ana Reyes",
			Comments:      "income verified by employer letter",
		})

		require.NoError(t, err)
		assert.Equal(t, 70, resp.FinalScore)
		assert.Equal(t, "MANUAL_REVIEW", resp.Recommendation)
		assert.Equal(t, "APPROVED", resp.Status)
		assert.Len(t, saved.DomainEvents(), 1)
	})
}
