package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func newTestPeriod(t *testing.T, start, end time.Time) *Period {
	t.Helper()
	p, err := NewPeriod(1, 2, start, end, testNow)
	require.NoError(t, err)
	return p
}

func TestNewPeriod(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		end := testNow.AddDate(0, 1, 0)
		p := newTestPeriod(t, testNow, end)

		assert.Equal(t, uint(1), p.MemberID())
		assert.Equal(t, uint(2), p.PlanID())
		assert.Equal(t, testNow, p.StartDate())
		assert.Equal(t, end, p.EndDate())
		assert.Equal(t, PeriodStatusActive, p.Status())
	})

	t.Run("end must be after start", func(t *testing.T) {
		_, err := NewPeriod(1, 2, testNow, testNow, testNow)
		assert.Error(t, err)
	})

	t.Run("member and plan required", func(t *testing.T) {
		_, err := NewPeriod(0, 2, testNow, testNow.AddDate(0, 1, 0), testNow)
		assert.Error(t, err)
		_, err = NewPeriod(1, 0, testNow, testNow.AddDate(0, 1, 0), testNow)
		assert.Error(t, err)
	})
}

func TestPeriod_ExtensionAnchor(t *testing.T) {
	t.Run("future end date stacks", func(t *testing.T) {
		end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		p := newTestPeriod(t, testNow.AddDate(0, -1, 0), end)

		assert.Equal(t, end, p.ExtensionAnchor(testNow))
	})

	t.Run("lapsed period anchors at now", func(t *testing.T) {
		end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		p := newTestPeriod(t, end.AddDate(0, -1, 0), end)

		assert.Equal(t, testNow, p.ExtensionAnchor(testNow),
			"a stale expiry must not produce a retroactive stack")
	})
}

func TestPeriod_ExtendTo(t *testing.T) {
	end := testNow.AddDate(0, 1, 0)
	p := newTestPeriod(t, testNow, end)

	newEnd := end.AddDate(0, 1, 0)
	require.NoError(t, p.ExtendTo(newEnd, testNow))

	assert.Equal(t, newEnd, p.EndDate())
	assert.Equal(t, testNow, p.StartDate(), "extension never moves the start date")
	assert.Equal(t, 2, p.Version())

	assert.Error(t, p.ExtendTo(newEnd.AddDate(0, -2, 0), testNow),
		"end date can only move forward")
}

func TestPeriod_IsCurrent(t *testing.T) {
	p := newTestPeriod(t, testNow.AddDate(0, -1, 0), testNow.Add(time.Hour))
	assert.True(t, p.IsCurrent(testNow))
	assert.False(t, p.IsCurrent(testNow.Add(2*time.Hour)))
	assert.False(t, p.IsCurrent(p.EndDate()), "a period ending exactly now is no longer current")
}
