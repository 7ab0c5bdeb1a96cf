package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymcore/internal/domain/plan"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testPlan(t *testing.T, id uint, name string) *plan.Plan {
	t.Helper()
	p, err := plan.ReconstructPlan(plan.PlanReconstructParams{
		ID:             id,
		SID:            "plan_test00000001",
		Name:           name,
		DurationMonths: 1,
		PriceCents:     2500000,
		Version:        1,
		CreatedAt:      testNow,
		UpdatedAt:      testNow,
	})
	require.NoError(t, err)
	return p
}

func TestCreatePlanUseCase_Success(t *testing.T) {
	var created *plan.Plan
	planRepo := &fakePlanRepo{
		GetByNameFn: func(ctx context.Context, name string) (*plan.Plan, error) {
			return nil, nil
		},
		CreateFn: func(ctx context.Context, p *plan.Plan) error {
			created = p
			return nil
		},
	}
	uc := NewCreatePlanUseCase(planRepo, biztime.FixedClock{Instant: testNow}, nopLogger{})

	result, err := uc.Execute(context.Background(), CreatePlanCommand{
		Name:           "Full Access",
		DurationMonths: 1,
		PriceCents:     2500000,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Full Access", result.Name)
	assert.Equal(t, 1, result.DurationMonths)
	assert.Equal(t, int64(2500000), result.PriceCents)
	assert.NotEmpty(t, result.SID)
}

func TestCreatePlanUseCase_DuplicateName(t *testing.T) {
	planRepo := &fakePlanRepo{
		GetByNameFn: func(ctx context.Context, name string) (*plan.Plan, error) {
			return testPlan(t, 7, name), nil
		},
	}
	uc := NewCreatePlanUseCase(planRepo, biztime.FixedClock{Instant: testNow}, nopLogger{})

	_, err := uc.Execute(context.Background(), CreatePlanCommand{
		Name:           "Full Access",
		DurationMonths: 1,
		PriceCents:     2500000,
	})

	assert.True(t, apperrors.IsConflictError(err))
}

func TestCreatePlanUseCase_InvalidData(t *testing.T) {
	planRepo := &fakePlanRepo{
		GetByNameFn: func(ctx context.Context, name string) (*plan.Plan, error) {
			return nil, nil
		},
	}
	uc := NewCreatePlanUseCase(planRepo, biztime.FixedClock{Instant: testNow}, nopLogger{})

	_, err := uc.Execute(context.Background(), CreatePlanCommand{
		Name:           "Zero Months",
		DurationMonths: 0,
		PriceCents:     2500000,
	})

	assert.True(t, apperrors.IsValidationError(err))
}
