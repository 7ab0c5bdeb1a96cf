package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "gymcore/internal/domain/member/valueobjects"
)

// --- helpers ---

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newValidMember(t *testing.T, renewalDate time.Time) *Member {
	t.Helper()
	m, err := NewMember("Ana", "Gomez", "30123456", nil, nil, renewalDate, nil, testNow)
	require.NoError(t, err)
	require.NotNil(t, m)
	return m
}

func reconstructMember(t *testing.T, status vo.MemberStatus, membershipStatus vo.MembershipStatus, renewalDate time.Time) *Member {
	t.Helper()
	m, err := ReconstructMember(MemberReconstructParams{
		ID:               1,
		SID:              "mem_test12345678",
		FirstName:        "Ana",
		LastName:         "Gomez",
		DNI:              "30123456",
		Status:           status,
		StartDate:        testNow.AddDate(-1, 0, 0),
		RenewalDate:      renewalDate,
		MembershipStatus: membershipStatus,
		Version:          1,
		CreatedAt:        testNow.AddDate(-1, 0, 0),
		UpdatedAt:        testNow.AddDate(-1, 0, 0),
	})
	require.NoError(t, err)
	return m
}

func TestDeriveMembershipStatus(t *testing.T) {
	now := testNow

	tests := []struct {
		name        string
		renewalDate time.Time
		want        vo.MembershipStatus
	}{
		{"future renewal date is active", now.Add(time.Hour), vo.MembershipActive},
		{"past renewal date is expired", now.Add(-time.Hour), vo.MembershipExpired},
		{"equal timestamps are expired", now, vo.MembershipExpired},
		{"one nanosecond in the future is active", now.Add(time.Nanosecond), vo.MembershipActive},
		{"far future is active", now.AddDate(10, 0, 0), vo.MembershipActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveMembershipStatus(tt.renewalDate, now))
		})
	}
}

func TestNewMember_ValidInput(t *testing.T) {
	renewal := testNow.AddDate(0, 1, 0)
	m := newValidMember(t, renewal)

	assert.NotEmpty(t, m.SID())
	assert.Equal(t, "Ana", m.FirstName())
	assert.Equal(t, "30123456", m.DNI())
	assert.Equal(t, vo.MemberStatusActive, m.Status())
	assert.Equal(t, vo.MembershipActive, m.MembershipStatus(), "future renewal date derives active")
	assert.Equal(t, testNow, m.StartDate())
	assert.Equal(t, renewal, m.RenewalDate())
	assert.Equal(t, 1, m.Version())
}

func TestNewMember_PastRenewalDateDerivesExpired(t *testing.T) {
	m := newValidMember(t, testNow.AddDate(0, -1, 0))
	assert.Equal(t, vo.MembershipExpired, m.MembershipStatus())
}

func TestNewMember_MissingFields(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		dni       string
	}{
		{"empty first name", "", "Gomez", "30123456"},
		{"empty last name", "Ana", "", "30123456"},
		{"empty dni", "Ana", "Gomez", ""},
		{"whitespace dni", "Ana", "Gomez", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMember(tt.firstName, tt.lastName, tt.dni, nil, nil, testNow.AddDate(0, 1, 0), nil, testNow)
			assert.Error(t, err)
		})
	}
}

func TestMember_NextRenewalDate_StacksOnCurrentCycle(t *testing.T) {
	renewal := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	m := reconstructMember(t, vo.MemberStatusActive, vo.MembershipExpired, renewal)

	// The anchor is the current renewal date, never "now": renewing early
	// must not lose remaining paid time.
	got := m.NextRenewalDate(1)
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestMember_RenewTo(t *testing.T) {
	t.Run("force-resets membership status to active", func(t *testing.T) {
		m := reconstructMember(t, vo.MemberStatusActive, vo.MembershipExpired, testNow.AddDate(0, -2, 0))
		newDate := testNow.AddDate(0, 1, 0)

		require.NoError(t, m.RenewTo(newDate, nil, testNow))

		assert.Equal(t, newDate, m.RenewalDate())
		assert.Equal(t, vo.MembershipActive, m.MembershipStatus())
		assert.Equal(t, 2, m.Version())
	})

	t.Run("keeps plan when none supplied", func(t *testing.T) {
		m := reconstructMember(t, vo.MemberStatusActive, vo.MembershipActive, testNow.AddDate(0, 1, 0))
		require.NoError(t, m.RenewTo(testNow.AddDate(0, 2, 0), nil, testNow))
		assert.Nil(t, m.PlanID())
	})

	t.Run("updates plan when supplied", func(t *testing.T) {
		m := reconstructMember(t, vo.MemberStatusActive, vo.MembershipActive, testNow.AddDate(0, 1, 0))
		planID := uint(7)
		require.NoError(t, m.RenewTo(testNow.AddDate(0, 2, 0), &planID, testNow))
		require.NotNil(t, m.PlanID())
		assert.Equal(t, uint(7), *m.PlanID())
	})

	t.Run("rejects zero renewal date", func(t *testing.T) {
		m := reconstructMember(t, vo.MemberStatusActive, vo.MembershipActive, testNow.AddDate(0, 1, 0))
		assert.Error(t, m.RenewTo(time.Time{}, nil, testNow))
	})
}

func TestMember_RefreshMembershipStatus(t *testing.T) {
	t.Run("flips lapsed member to expired", func(t *testing.T) {
		m := reconstructMember(t, vo.MemberStatusActive, vo.MembershipActive, testNow.Add(-time.Hour))

		changed := m.RefreshMembershipStatus(testNow)

		assert.True(t, changed)
		assert.Equal(t, vo.MembershipExpired, m.MembershipStatus())
	})

	t.Run("idempotent for already expired member", func(t *testing.T) {
		m := reconstructMember(t, vo.MemberStatusActive, vo.MembershipExpired, testNow.Add(-time.Hour))
		versionBefore := m.Version()

		changed := m.RefreshMembershipStatus(testNow)

		assert.False(t, changed)
		assert.Equal(t, versionBefore, m.Version(), "no-op refresh must not bump the version")
	})

	t.Run("does not touch a member not yet due", func(t *testing.T) {
		m := reconstructMember(t, vo.MemberStatusActive, vo.MembershipActive, testNow.Add(time.Hour))
		assert.False(t, m.RefreshMembershipStatus(testNow))
		assert.Equal(t, vo.MembershipActive, m.MembershipStatus())
	})
}

func TestMember_ActivateAccount(t *testing.T) {
	m := reconstructMember(t, vo.MemberStatusInactive, vo.MembershipExpired, testNow.Add(-time.Hour))

	m.ActivateAccount(testNow)
	assert.Equal(t, vo.MemberStatusActive, m.Status())

	// Activating an already-active account is a no-op.
	versionBefore := m.Version()
	m.ActivateAccount(testNow)
	assert.Equal(t, versionBefore, m.Version())
}

func TestMember_UpdateProfile(t *testing.T) {
	m := newValidMember(t, testNow.AddDate(0, 1, 0))

	newFirst := "Maria"
	email := "maria@example.com"
	require.NoError(t, m.UpdateProfile(&newFirst, nil, &email, nil, testNow))

	assert.Equal(t, "Maria", m.FirstName())
	assert.Equal(t, "Gomez", m.LastName())
	require.NotNil(t, m.Email())
	assert.Equal(t, "maria@example.com", *m.Email())

	empty := "  "
	assert.Error(t, m.UpdateProfile(&empty, nil, nil, nil, testNow))
}
