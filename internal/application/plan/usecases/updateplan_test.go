package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymcore/internal/domain/plan"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
)

func TestUpdatePlanUseCase_RenamesAndReprices(t *testing.T) {
	existing := testPlan(t, 7, "Full Access")
	var updated *plan.Plan
	planRepo := &fakePlanRepo{
		GetBySIDFn: func(ctx context.Context, sid string) (*plan.Plan, error) {
			return existing, nil
		},
		GetByNameFn: func(ctx context.Context, name string) (*plan.Plan, error) {
			return nil, nil
		},
		UpdateFn: func(ctx context.Context, p *plan.Plan) error {
			updated = p
			return nil
		},
	}
	uc := NewUpdatePlanUseCase(planRepo, biztime.FixedClock{Instant: testNow}, nopLogger{})

	newName := "Premium"
	newPrice := int64(3200000)
	result, err := uc.Execute(context.Background(), UpdatePlanCommand{
		SID:        existing.SID(),
		Name:       &newName,
		PriceCents: &newPrice,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Premium", result.Name)
	assert.Equal(t, int64(3200000), result.PriceCents)
}

func TestUpdatePlanUseCase_NameTakenByAnotherPlan(t *testing.T) {
	existing := testPlan(t, 7, "Full Access")
	other := testPlan(t, 8, "Premium")
	planRepo := &fakePlanRepo{
		GetBySIDFn: func(ctx context.Context, sid string) (*plan.Plan, error) {
			return existing, nil
		},
		GetByNameFn: func(ctx context.Context, name string) (*plan.Plan, error) {
			return other, nil
		},
	}
	uc := NewUpdatePlanUseCase(planRepo, biztime.FixedClock{Instant: testNow}, nopLogger{})

	newName := "Premium"
	_, err := uc.Execute(context.Background(), UpdatePlanCommand{
		SID:  existing.SID(),
		Name: &newName,
	})

	assert.True(t, apperrors.IsConflictError(err))
}

func TestUpdatePlanUseCase_ConcurrentUpdateConflicts(t *testing.T) {
	existing := testPlan(t, 7, "Full Access")
	planRepo := &fakePlanRepo{
		GetBySIDFn: func(ctx context.Context, sid string) (*plan.Plan, error) {
			return existing, nil
		},
		UpdateFn: func(ctx context.Context, p *plan.Plan) error {
			return apperrors.NewConflictError("plan was modified concurrently")
		},
	}
	uc := NewUpdatePlanUseCase(planRepo, biztime.FixedClock{Instant: testNow}, nopLogger{})

	newDuration := 3
	_, err := uc.Execute(context.Background(), UpdatePlanCommand{
		SID:            existing.SID(),
		DurationMonths: &newDuration,
	})

	assert.True(t, apperrors.IsConflictError(err))
}

func TestUpdatePlanUseCase_UnknownPlan(t *testing.T) {
	planRepo := &fakePlanRepo{
		GetBySIDFn: func(ctx context.Context, sid string) (*plan.Plan, error) {
			return nil, apperrors.NewNotFoundError("plan not found")
		},
	}
	uc := NewUpdatePlanUseCase(planRepo, biztime.FixedClock{Instant: testNow}, nopLogger{})

	newName := "Premium"
	_, err := uc.Execute(context.Background(), UpdatePlanCommand{
		SID:  "plan_missing",
		Name: &newName,
	})

	assert.True(t, apperrors.IsNotFoundError(err))
}
