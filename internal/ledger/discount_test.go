package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiscount(now *time.Time) *Discount {
	d := NewDiscount("FNCS50", 0.50)
	d.now = func() time.Time { return *now }
	return d
}

func TestDiscountInactiveByDefault(t *testing.T) {
	now := testNow
	d := newTestDiscount(&now)

	assert.False(t, d.IsActive())

	_, _, err := d.Validate("FNCS50", 5)
	assert.ErrorIs(t, err, ErrNoActiveDiscount)
}

func TestDiscountValidate(t *testing.T) {
	now := testNow
	d := newTestDiscount(&now)
	d.ActivateWindow()

	require.True(t, d.IsActive())

	price, expiresAt, err := d.Validate("fncs50", 5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, price)
	assert.Equal(t, testNow.Add(DiscountWindow), expiresAt)
}

func TestDiscountInvalidCode(t *testing.T) {
	now := testNow
	d := newTestDiscount(&now)
	d.ActivateWindow()

	_, _, err := d.Validate("WRONG", 5)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestDiscountLazyExpiry(t *testing.T) {
	now := testNow
	d := newTestDiscount(&now)
	d.ActivateWindow()

	now = testNow.Add(DiscountWindow - time.Minute)
	_, _, err := d.Validate("FNCS50", 5)
	require.NoError(t, err)

	now = testNow.Add(DiscountWindow + time.Minute)
	_, _, err = d.Validate("FNCS50", 5)
	assert.ErrorIs(t, err, ErrNoActiveDiscount)
	assert.False(t, d.IsActive())

	// Re-activation opens a fresh window from the later instant.
	d.ActivateWindow()
	assert.True(t, d.IsActive())
}

func TestDiscountRoundsToCents(t *testing.T) {
	now := testNow
	d := NewDiscount("SAVE33", 0.33)
	d.now = func() time.Time { return now }
	d.ActivateWindow()

	price, _, err := d.Validate("SAVE33", 4.99)
	require.NoError(t, err)
	assert.Equal(t, 3.34, price)
}
