package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymcore/internal/domain/member"
	membervo "gymcore/internal/domain/member/valueobjects"
	"gymcore/internal/domain/membership"
	"gymcore/internal/domain/payment"
	paymentvo "gymcore/internal/domain/payment/valueobjects"
	"gymcore/internal/domain/plan"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
)

var testNow = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

type confirmFixture struct {
	member  *member.Member
	plan    *plan.Plan
	payment *payment.Payment
	periods *fakePeriodRepo
	members *fakeMemberRepo

	memberUpdated  bool
	paymentUpdated bool
	createdPeriod  *membership.Period
	updatedPeriod  *membership.Period
}

func newConfirmFixture(t *testing.T, memberStatus membervo.MemberStatus, current *membership.Period) *confirmFixture {
	t.Helper()

	m, err := member.ReconstructMember(member.MemberReconstructParams{
		ID:               1,
		SID:              "mem_test00000001",
		FirstName:        "Ana",
		LastName:         "Suarez",
		DNI:              "30123456",
		Status:           memberStatus,
		StartDate:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		RenewalDate:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		MembershipStatus: membervo.MembershipExpired,
		Version:          1,
		CreatedAt:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	p, err := plan.ReconstructPlan(plan.PlanReconstructParams{
		ID:             7,
		SID:            "plan_test0000007",
		Name:           "Full Access",
		DurationMonths: 1,
		PriceCents:     2500000,
		Version:        1,
		CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	ref := "ref-123"
	pay, err := payment.ReconstructPayment(payment.PaymentReconstructParams{
		ID:                11,
		SID:               "pay_test00000011",
		MemberID:          1,
		PlanID:            7,
		Amount:            paymentvo.NewMoney(2500000, "ARS"),
		Status:            paymentvo.PaymentStatusPending,
		Date:              testNow,
		ProviderReference: &ref,
		Version:           1,
		CreatedAt:         testNow,
		UpdatedAt:         testNow,
	})
	require.NoError(t, err)

	fx := &confirmFixture{member: m, plan: p, payment: pay}

	fx.members = &fakeMemberRepo{
		GetByIDFn: func(ctx context.Context, memberID uint) (*member.Member, error) {
			return m, nil
		},
		UpdateFn: func(ctx context.Context, m *member.Member) error {
			fx.memberUpdated = true
			return nil
		},
	}
	fx.periods = &fakePeriodRepo{
		GetCurrentByMemberIDFn: func(ctx context.Context, memberID uint) (*membership.Period, error) {
			return current, nil
		},
		CreateFn: func(ctx context.Context, per *membership.Period) error {
			fx.createdPeriod = per
			return per.SetID(21)
		},
		UpdateFn: func(ctx context.Context, per *membership.Period) error {
			fx.updatedPeriod = per
			return nil
		},
	}
	return fx
}

func (fx *confirmFixture) useCase() *ConfirmPaymentUseCase {
	paymentRepo := &fakePaymentRepo{
		GetBySIDFn: func(ctx context.Context, sid string) (*payment.Payment, error) {
			return fx.payment, nil
		},
		UpdateFn: func(ctx context.Context, p *payment.Payment) error {
			fx.paymentUpdated = true
			return nil
		},
	}
	planRepo := &fakePlanRepo{
		GetByIDFn: func(ctx context.Context, planID uint) (*plan.Plan, error) {
			return fx.plan, nil
		},
	}
	return NewConfirmPaymentUseCase(
		paymentRepo, fx.members, planRepo, fx.periods,
		passthroughTx{}, nil, biztime.FixedClock{Instant: testNow}, nopLogger{},
	)
}

func testPeriod(t *testing.T, endDate time.Time) *membership.Period {
	t.Helper()
	per, err := membership.ReconstructPeriod(membership.PeriodReconstructParams{
		ID:        21,
		SID:       "per_test00000021",
		MemberID:  1,
		PlanID:    7,
		StartDate: endDate.AddDate(0, -1, 0),
		EndDate:   endDate,
		Status:    membership.PeriodStatusActive,
		Version:   1,
		CreatedAt: endDate.AddDate(0, -1, 0),
		UpdatedAt: endDate.AddDate(0, -1, 0),
	})
	require.NoError(t, err)
	return per
}

func TestConfirmPaymentUseCase_NoPeriodOpensFreshMonth(t *testing.T) {
	fx := newConfirmFixture(t, membervo.MemberStatusActive, nil)

	result, err := fx.useCase().Execute(context.Background(), ConfirmPaymentCommand{PaymentSID: "pay_test00000011"})
	require.NoError(t, err)

	require.NotNil(t, fx.createdPeriod)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), fx.createdPeriod.StartDate())
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), fx.createdPeriod.EndDate())
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), result.RenewalDate)
	assert.Equal(t, "active", result.MembershipText)
	assert.True(t, fx.memberUpdated)
	assert.True(t, fx.paymentUpdated)
	assert.Equal(t, "Successful", result.Payment.Status)
}

func TestConfirmPaymentUseCase_FuturePeriodStacks(t *testing.T) {
	current := testPeriod(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	fx := newConfirmFixture(t, membervo.MemberStatusActive, current)

	result, err := fx.useCase().Execute(context.Background(), ConfirmPaymentCommand{PaymentSID: "pay_test00000011"})
	require.NoError(t, err)

	// Paying early anchors on the period end, not on today.
	require.NotNil(t, fx.updatedPeriod)
	assert.Nil(t, fx.createdPeriod)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), fx.updatedPeriod.EndDate())
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), result.RenewalDate)
}

func TestConfirmPaymentUseCase_LapsedPeriodExtendsInPlaceFromNow(t *testing.T) {
	stale := testPeriod(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	fx := newConfirmFixture(t, membervo.MemberStatusActive, stale)

	result, err := fx.useCase().Execute(context.Background(), ConfirmPaymentCommand{PaymentSID: "pay_test00000011"})
	require.NoError(t, err)

	// The lapsed row is extended in place, not replaced, and the gap between
	// the stale end and today is not billed.
	require.NotNil(t, fx.updatedPeriod)
	assert.Nil(t, fx.createdPeriod)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), fx.updatedPeriod.StartDate())
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), fx.updatedPeriod.EndDate())
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), result.RenewalDate)
}

func TestConfirmPaymentUseCase_ReactivatesDormantAccount(t *testing.T) {
	fx := newConfirmFixture(t, membervo.MemberStatusInactive, nil)

	result, err := fx.useCase().Execute(context.Background(), ConfirmPaymentCommand{PaymentSID: "pay_test00000011"})
	require.NoError(t, err)

	assert.Equal(t, membervo.MemberStatusActive, fx.member.Status())
	assert.Equal(t, "active", result.MembershipText)
}

func TestConfirmPaymentUseCase_DormantAccountWithPeriodStaysDormant(t *testing.T) {
	stale := testPeriod(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	fx := newConfirmFixture(t, membervo.MemberStatusInactive, stale)

	result, err := fx.useCase().Execute(context.Background(), ConfirmPaymentCommand{PaymentSID: "pay_test00000011"})
	require.NoError(t, err)

	// Only a first period wakes the account; extending keeps staff in charge
	// of the administrative status.
	require.NotNil(t, fx.updatedPeriod)
	assert.Equal(t, membervo.MemberStatusInactive, fx.member.Status())
	assert.Equal(t, "active", result.MembershipText)
}

func TestConfirmPaymentUseCase_SuspensionSurvivesPayment(t *testing.T) {
	fx := newConfirmFixture(t, membervo.MemberStatusSuspended, nil)

	result, err := fx.useCase().Execute(context.Background(), ConfirmPaymentCommand{PaymentSID: "pay_test00000011"})
	require.NoError(t, err)

	// The period still extends, but lifting a suspension is a staff action.
	require.NotNil(t, fx.createdPeriod)
	assert.Equal(t, membervo.MemberStatusSuspended, fx.member.Status())
	assert.Equal(t, "active", result.MembershipText)
}

func TestConfirmPaymentUseCase_AlreadySuccessfulDoesNotExtendAgain(t *testing.T) {
	current := testPeriod(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	fx := newConfirmFixture(t, membervo.MemberStatusActive, current)
	require.NoError(t, fx.payment.MarkAsSuccessful(testNow))

	result, err := fx.useCase().Execute(context.Background(), ConfirmPaymentCommand{PaymentSID: "pay_test00000011"})
	require.NoError(t, err)

	assert.Nil(t, fx.createdPeriod)
	assert.Nil(t, fx.updatedPeriod)
	assert.False(t, fx.memberUpdated)
	assert.False(t, fx.paymentUpdated)
	assert.Equal(t, "Successful", result.Payment.Status)
}

func TestConfirmPaymentUseCase_FailedPaymentCannotBeConfirmed(t *testing.T) {
	fx := newConfirmFixture(t, membervo.MemberStatusActive, nil)
	require.NoError(t, fx.payment.MarkAsFailed("card declined", testNow))

	result, err := fx.useCase().Execute(context.Background(), ConfirmPaymentCommand{PaymentSID: "pay_test00000011"})
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestConfirmPaymentUseCase_ResolvesByProviderReference(t *testing.T) {
	fx := newConfirmFixture(t, membervo.MemberStatusActive, nil)

	paymentRepo := &fakePaymentRepo{
		GetByProviderReferenceFn: func(ctx context.Context, ref string) (*payment.Payment, error) {
			assert.Equal(t, "ref-123", ref)
			return fx.payment, nil
		},
		UpdateFn: func(ctx context.Context, p *payment.Payment) error {
			return nil
		},
	}
	planRepo := &fakePlanRepo{
		GetByIDFn: func(ctx context.Context, planID uint) (*plan.Plan, error) {
			return fx.plan, nil
		},
	}
	uc := NewConfirmPaymentUseCase(
		paymentRepo, fx.members, planRepo, fx.periods,
		passthroughTx{}, nil, biztime.FixedClock{Instant: testNow}, nopLogger{},
	)

	result, err := uc.Execute(context.Background(), ConfirmPaymentCommand{ProviderReference: "ref-123"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), result.RenewalDate)
}

func TestConfirmPaymentUseCase_MissingIdentifier(t *testing.T) {
	fx := newConfirmFixture(t, membervo.MemberStatusActive, nil)

	result, err := fx.useCase().Execute(context.Background(), ConfirmPaymentCommand{})
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
}
