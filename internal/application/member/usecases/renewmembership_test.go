package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymcore/internal/domain/member"
	vo "gymcore/internal/domain/member/valueobjects"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testMember(t *testing.T, renewalDate time.Time) *member.Member {
	t.Helper()
	m, err := member.ReconstructMember(member.MemberReconstructParams{
		ID:               1,
		SID:              "mem_test00000001",
		FirstName:        "Ana",
		LastName:         "Suarez",
		DNI:              "30123456",
		Status:           vo.MemberStatusActive,
		StartDate:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		RenewalDate:      renewalDate,
		MembershipStatus: member.DeriveMembershipStatus(renewalDate, testNow),
		Version:          1,
		CreatedAt:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return m
}

func TestRenewMembershipUseCase_StacksOnCurrentRenewalDate(t *testing.T) {
	m := testMember(t, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC))

	var updated *member.Member
	memberRepo := &fakeMemberRepo{
		GetByDNIFn: func(ctx context.Context, dni string) (*member.Member, error) {
			assert.Equal(t, "30123456", dni)
			return m, nil
		},
		UpdateFn: func(ctx context.Context, m *member.Member) error {
			updated = m
			return nil
		},
	}

	uc := NewRenewMembershipUseCase(memberRepo, &fakePlanRepo{}, nil, 1, biztime.FixedClock{Instant: testNow}, nopLogger{})

	result, err := uc.Execute(context.Background(), RenewMembershipCommand{DNI: "30123456"})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// Renewing early stacks the month on top of the remaining time.
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), result.RenewalDate)
	assert.Equal(t, "active", result.MembershipStatus)
}

func TestRenewMembershipUseCase_ExplicitDateWins(t *testing.T) {
	m := testMember(t, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC))

	memberRepo := &fakeMemberRepo{
		GetByDNIFn: func(ctx context.Context, dni string) (*member.Member, error) {
			return m, nil
		},
		UpdateFn: func(ctx context.Context, m *member.Member) error {
			return nil
		},
	}

	uc := NewRenewMembershipUseCase(memberRepo, &fakePlanRepo{}, nil, 1, biztime.FixedClock{Instant: testNow}, nopLogger{})

	explicit := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	result, err := uc.Execute(context.Background(), RenewMembershipCommand{
		DNI:            "30123456",
		NewRenewalDate: &explicit,
	})
	require.NoError(t, err)
	assert.Equal(t, explicit, result.RenewalDate)
}

func TestRenewMembershipUseCase_ReactivatesLapsedMembership(t *testing.T) {
	m := testMember(t, time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC))
	require.Equal(t, vo.MembershipExpired, m.MembershipStatus())

	memberRepo := &fakeMemberRepo{
		GetByDNIFn: func(ctx context.Context, dni string) (*member.Member, error) {
			return m, nil
		},
		UpdateFn: func(ctx context.Context, m *member.Member) error {
			return nil
		},
	}

	uc := NewRenewMembershipUseCase(memberRepo, &fakePlanRepo{}, nil, 1, biztime.FixedClock{Instant: testNow}, nopLogger{})

	result, err := uc.Execute(context.Background(), RenewMembershipCommand{DNI: "30123456"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), result.RenewalDate)
	assert.Equal(t, "active", result.MembershipStatus)
}

func TestRenewMembershipUseCase_UnknownDNI(t *testing.T) {
	memberRepo := &fakeMemberRepo{
		GetByDNIFn: func(ctx context.Context, dni string) (*member.Member, error) {
			return nil, nil
		},
	}

	uc := NewRenewMembershipUseCase(memberRepo, &fakePlanRepo{}, nil, 1, biztime.FixedClock{Instant: testNow}, nopLogger{})

	result, err := uc.Execute(context.Background(), RenewMembershipCommand{DNI: "99999999"})
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestRenewMembershipUseCase_ConcurrentUpdateConflicts(t *testing.T) {
	m := testMember(t, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC))

	memberRepo := &fakeMemberRepo{
		GetByDNIFn: func(ctx context.Context, dni string) (*member.Member, error) {
			return m, nil
		},
		UpdateFn: func(ctx context.Context, m *member.Member) error {
			return member.ErrVersionConflict
		},
	}

	uc := NewRenewMembershipUseCase(memberRepo, &fakePlanRepo{}, nil, 1, biztime.FixedClock{Instant: testNow}, nopLogger{})

	result, err := uc.Execute(context.Background(), RenewMembershipCommand{DNI: "30123456"})
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
}
