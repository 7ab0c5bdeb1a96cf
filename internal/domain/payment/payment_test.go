package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "gymcore/internal/domain/payment/valueobjects"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newPendingPayment(t *testing.T) *Payment {
	t.Helper()
	p, err := NewPayment(1, 2, vo.NewMoney(2500000, "ARS"), testNow)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		p := newPendingPayment(t)

		assert.NotEmpty(t, p.SID())
		assert.Equal(t, vo.PaymentStatusPending, p.Status())
		assert.Equal(t, testNow, p.Date())
		assert.Nil(t, p.PaidAt())
		assert.Equal(t, 1, p.Version())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewPayment(1, 2, vo.NewMoney(0, "ARS"), testNow)
		assert.Error(t, err)
		_, err = NewPayment(1, 2, vo.NewMoney(-100, "ARS"), testNow)
		assert.Error(t, err)
	})

	t.Run("rejects missing member or plan", func(t *testing.T) {
		_, err := NewPayment(0, 2, vo.NewMoney(100, "ARS"), testNow)
		assert.Error(t, err)
		_, err = NewPayment(1, 0, vo.NewMoney(100, "ARS"), testNow)
		assert.Error(t, err)
	})
}

func TestPayment_MarkAsSuccessful(t *testing.T) {
	t.Run("pending to successful", func(t *testing.T) {
		p := newPendingPayment(t)

		require.NoError(t, p.MarkAsSuccessful(testNow))

		assert.Equal(t, vo.PaymentStatusSuccessful, p.Status())
		require.NotNil(t, p.PaidAt())
		assert.Equal(t, testNow, *p.PaidAt())
		assert.Equal(t, 2, p.Version())
	})

	t.Run("idempotent once successful", func(t *testing.T) {
		p := newPendingPayment(t)
		require.NoError(t, p.MarkAsSuccessful(testNow))
		versionBefore := p.Version()

		require.NoError(t, p.MarkAsSuccessful(testNow.Add(time.Hour)))
		assert.Equal(t, versionBefore, p.Version())
	})

	t.Run("failed payment cannot become successful", func(t *testing.T) {
		p := newPendingPayment(t)
		require.NoError(t, p.MarkAsFailed("card declined", testNow))

		assert.Error(t, p.MarkAsSuccessful(testNow))
	})
}

func TestPayment_MarkAsFailed(t *testing.T) {
	t.Run("pending to failed with reason", func(t *testing.T) {
		p := newPendingPayment(t)

		require.NoError(t, p.MarkAsFailed("card declined", testNow))

		assert.Equal(t, vo.PaymentStatusFailed, p.Status())
		require.NotNil(t, p.FailureReason())
		assert.Equal(t, "card declined", *p.FailureReason())
	})

	t.Run("terminal statuses reject failure", func(t *testing.T) {
		p := newPendingPayment(t)
		require.NoError(t, p.MarkAsSuccessful(testNow))

		err := p.MarkAsFailed("late decline", testNow)
		assert.ErrorIs(t, err, ErrAlreadyFinal,
			"a successful payment record is immutable")
	})
}

func TestPaymentStatus(t *testing.T) {
	assert.True(t, vo.PaymentStatusSuccessful.IsFinal())
	assert.True(t, vo.PaymentStatusFailed.IsFinal())
	assert.False(t, vo.PaymentStatusPending.IsFinal())
	assert.False(t, vo.PaymentStatus("Refunded").IsValid())
}
