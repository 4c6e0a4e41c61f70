package ledger

import (
	"testing"
	"time"

	"github.com/fortniteiabot/fortnitecoach/store"
	"github.com/fortniteiabot/fortnitecoach/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReferral(t *testing.T, notify func(int64)) (*ReferralLedger, *PremiumManager) {
	t.Helper()
	st := store.NewFileStore(t.TempDir())
	premium := NewPremiumManager(st)
	premium.now = func() time.Time { return testNow }
	return NewReferralLedger(st, premium, notify), premium
}

func TestAttachSelfReferral(t *testing.T) {
	l, _ := newTestReferral(t, nil)

	assert.ErrorIs(t, l.Attach(1, 1), ErrSelfReferral)
	assert.Empty(t, l.Record(1).ReferredBy)
}

func TestAttachFirstWriteWins(t *testing.T) {
	l, _ := newTestReferral(t, nil)

	require.NoError(t, l.Attach(2, 1))
	assert.ErrorIs(t, l.Attach(2, 3), ErrAlreadyReferred)

	assert.Equal(t, "1", l.Record(2).ReferredBy)
	assert.Equal(t, []string{"2"}, l.Record(1).Referred)
	assert.Empty(t, l.Record(3).Referred)
}

func TestAttachCreatesReferrerRecord(t *testing.T) {
	l, _ := newTestReferral(t, nil)

	require.NoError(t, l.Attach(5, 9))

	referrer := l.Record(9)
	assert.True(t, referrer.HasReferred("5"))
	assert.Empty(t, referrer.ReferredBy)
}

func TestSettleBonusGrantsOnce(t *testing.T) {
	var notified []int64
	l, premium := newTestReferral(t, func(id int64) { notified = append(notified, id) })

	require.NoError(t, l.Attach(2, 1))
	require.NoError(t, premium.Grant(2, 30, types.PlanStandard))

	require.NoError(t, l.SettleBonus(2))
	require.NoError(t, l.SettleBonus(2))

	// A single 7-day grant, not two.
	entry, ok := premium.Entry(1)
	require.True(t, ok)
	assert.Equal(t, testNow.AddDate(0, 0, BonusDays).Format(types.DateLayout), entry.Exp)

	assert.True(t, l.Record(1).BonusGrantedFor("2"))
	assert.Equal(t, []int64{1}, notified)
}

func TestSettleBonusWithoutReferrer(t *testing.T) {
	notified := 0
	l, premium := newTestReferral(t, func(int64) { notified++ })

	require.NoError(t, l.SettleBonus(77))

	_, ok := premium.Entry(77)
	assert.False(t, ok)
	assert.Zero(t, notified)
}

func TestSettleBonusPerReferredUser(t *testing.T) {
	l, premium := newTestReferral(t, nil)

	require.NoError(t, l.Attach(2, 1))
	require.NoError(t, l.Attach(3, 1))

	require.NoError(t, l.SettleBonus(2))
	require.NoError(t, l.SettleBonus(3))

	// Two distinct referred users stack two bonuses.
	entry, ok := premium.Entry(1)
	require.True(t, ok)
	assert.Equal(t, testNow.AddDate(0, 0, 2*BonusDays).Format(types.DateLayout), entry.Exp)
}
