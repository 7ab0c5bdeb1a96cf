package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymcore/internal/application/member/dto"
	"gymcore/internal/domain/member"
	"gymcore/internal/domain/plan"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
)

func testMemberWithPlan(t *testing.T, renewalDate time.Time, planID uint) *member.Member {
	t.Helper()
	m := testMember(t, renewalDate)
	cmdPlanID := planID
	require.NoError(t, m.RenewTo(renewalDate, &cmdPlanID, testNow))
	return m
}

func TestCheckInInfoUseCase_ActiveMember(t *testing.T) {
	m := testMember(t, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC))

	memberRepo := &fakeMemberRepo{
		GetByDNIFn: func(ctx context.Context, dni string) (*member.Member, error) {
			return m, nil
		},
	}

	uc := NewCheckInInfoUseCase(memberRepo, &fakePlanRepo{}, nil, biztime.FixedClock{Instant: testNow}, nopLogger{})

	info, err := uc.Execute(context.Background(), CheckInInfoCommand{DNI: "30123456"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", info.FirstName)
	assert.Equal(t, "15/04/2024", info.RenewalDate)
	assert.Equal(t, "Membership active until 15/04/2024", info.MembershipStatusText)
	assert.Nil(t, info.PlanName)
}

func TestCheckInInfoUseCase_LapsedMember(t *testing.T) {
	m := testMember(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	memberRepo := &fakeMemberRepo{
		GetByDNIFn: func(ctx context.Context, dni string) (*member.Member, error) {
			return m, nil
		},
	}

	uc := NewCheckInInfoUseCase(memberRepo, &fakePlanRepo{}, nil, biztime.FixedClock{Instant: testNow}, nopLogger{})

	info, err := uc.Execute(context.Background(), CheckInInfoCommand{DNI: "30123456"})
	require.NoError(t, err)
	assert.Equal(t, "Membership expired since 01/02/2024", info.MembershipStatusText)
}

func TestCheckInInfoUseCase_ResolvesPlanName(t *testing.T) {
	m := testMemberWithPlan(t, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC), 7)

	memberRepo := &fakeMemberRepo{
		GetByDNIFn: func(ctx context.Context, dni string) (*member.Member, error) {
			return m, nil
		},
	}
	planRepo := &fakePlanRepo{
		GetByIDFn: func(ctx context.Context, planID uint) (*plan.Plan, error) {
			require.Equal(t, uint(7), planID)
			return plan.ReconstructPlan(plan.PlanReconstructParams{
				ID:             7,
				SID:            "plan_test0000007",
				Name:           "Full Access",
				DurationMonths: 1,
				PriceCents:     2500000,
				Version:        1,
				CreatedAt:      testNow,
				UpdatedAt:      testNow,
			})
		},
	}

	uc := NewCheckInInfoUseCase(memberRepo, planRepo, nil, biztime.FixedClock{Instant: testNow}, nopLogger{})

	info, err := uc.Execute(context.Background(), CheckInInfoCommand{DNI: "30123456"})
	require.NoError(t, err)
	require.NotNil(t, info.PlanName)
	assert.Equal(t, "Full Access", *info.PlanName)
}

func TestCheckInInfoUseCase_CacheHitSkipsStorage(t *testing.T) {
	cached := &dto.CheckInInfoDTO{SID: "mem_cached", FirstName: "Ana"}
	cache := &fakeCheckInCache{
		GetFn: func(ctx context.Context, dni string) (*dto.CheckInInfoDTO, error) {
			return cached, nil
		},
	}
	memberRepo := &fakeMemberRepo{
		GetByDNIFn: func(ctx context.Context, dni string) (*member.Member, error) {
			t.Fatal("storage should not be hit on a cache hit")
			return nil, nil
		},
	}

	uc := NewCheckInInfoUseCase(memberRepo, &fakePlanRepo{}, cache, biztime.FixedClock{Instant: testNow}, nopLogger{})

	info, err := uc.Execute(context.Background(), CheckInInfoCommand{DNI: "30123456"})
	require.NoError(t, err)
	assert.Same(t, cached, info)
}

func TestCheckInInfoUseCase_CacheMissPopulatesCache(t *testing.T) {
	m := testMember(t, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC))

	var stored *dto.CheckInInfoDTO
	cache := &fakeCheckInCache{
		GetFn: func(ctx context.Context, dni string) (*dto.CheckInInfoDTO, error) {
			return nil, nil
		},
		SetFn: func(ctx context.Context, dni string, info *dto.CheckInInfoDTO) error {
			stored = info
			return nil
		},
	}
	memberRepo := &fakeMemberRepo{
		GetByDNIFn: func(ctx context.Context, dni string) (*member.Member, error) {
			return m, nil
		},
	}

	uc := NewCheckInInfoUseCase(memberRepo, &fakePlanRepo{}, cache, biztime.FixedClock{Instant: testNow}, nopLogger{})

	info, err := uc.Execute(context.Background(), CheckInInfoCommand{DNI: "30123456"})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, info, stored)
}

func TestCheckInInfoUseCase_UnknownDNI(t *testing.T) {
	memberRepo := &fakeMemberRepo{
		GetByDNIFn: func(ctx context.Context, dni string) (*member.Member, error) {
			return nil, nil
		},
	}

	uc := NewCheckInInfoUseCase(memberRepo, &fakePlanRepo{}, nil, biztime.FixedClock{Instant: testNow}, nopLogger{})

	info, err := uc.Execute(context.Background(), CheckInInfoCommand{DNI: "99999999"})
	assert.Nil(t, info)
	assert.True(t, apperrors.IsNotFoundError(err))
}
