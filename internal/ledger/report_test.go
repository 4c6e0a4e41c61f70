package ledger

import (
	"testing"
	"time"

	"github.com/fortniteiabot/fortnitecoach/store"
	"github.com/fortniteiabot/fortnitecoach/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterOnce(t *testing.T) {
	r := NewRegistry(store.NewFileStore(t.TempDir()))

	require.NoError(t, r.Register(1))
	require.NoError(t, r.Register(1))
	require.NoError(t, r.Register(2))

	assert.Equal(t, 2, r.Count())
	assert.ElementsMatch(t, []int64{1, 2}, r.All())
}

func TestSummaryClassification(t *testing.T) {
	dir := t.TempDir()
	st := store.NewFileStore(dir)

	future := testNow.AddDate(0, 0, 30).Format(types.DateLayout)
	past := testNow.AddDate(0, 0, -30).Format(types.DateLayout)
	seedPremiumJSON(t, dir, `{
        "1": "`+future+`",
        "2": "`+past+`",
        "3": {"lifetime": false, "exp": "`+future+`", "plan": "standard"},
        "4": {"lifetime": false, "exp": "`+future+`", "plan": "plus"},
        "5": {"lifetime": false, "exp": "`+past+`", "plan": "plus"},
        "6": {"lifetime": true, "plan": "standard"},
        "7": {"lifetime": true, "plan": "plus"}
    }`)

	registry := NewRegistry(st)
	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, registry.Register(id))
	}

	tracker := NewProgressionTracker(st)
	require.NoError(t, tracker.Award(1, 10))
	require.NoError(t, tracker.Award(2, 5))

	reporter := NewReporter(st, registry)
	reporter.now = func() time.Time { return testNow }

	s := reporter.Summary()
	assert.Equal(t, 3, s.TotalUsers)
	// Legacy active (1) + structured standard (3) + lifetime standard (6).
	assert.Equal(t, 3, s.ActiveStandard)
	// Structured plus (4) + lifetime plus (7); expired plus (5) excluded.
	assert.Equal(t, 2, s.ActivePlus)
	assert.Equal(t, 2, s.ActiveLifetime)
	assert.Equal(t, 2, s.TrackedXP)
}

func TestPremiumEntriesListing(t *testing.T) {
	dir := t.TempDir()
	st := store.NewFileStore(dir)

	future := testNow.AddDate(0, 0, 30).Format(types.DateLayout)
	past := testNow.AddDate(0, 0, -30).Format(types.DateLayout)
	seedPremiumJSON(t, dir, `{
        "10": "`+past+`",
        "11": {"lifetime": true, "plan": "plus"},
        "12": {"lifetime": false, "exp": "`+future+`", "plan": "standard"}
    }`)

	reporter := NewReporter(st, NewRegistry(st))
	reporter.now = func() time.Time { return testNow }

	entries := reporter.PremiumEntries()
	require.Len(t, entries, 3)

	assert.Equal(t, "10", entries[0].UserKey)
	assert.Equal(t, types.PlanStandard, entries[0].Plan)
	assert.False(t, entries[0].Active)
	assert.False(t, entries[0].Lifetime)

	assert.Equal(t, "11", entries[1].UserKey)
	assert.True(t, entries[1].Lifetime)
	assert.True(t, entries[1].Active)

	assert.Equal(t, "12", entries[2].UserKey)
	assert.True(t, entries[2].Active)
}

func TestEntitledUsers(t *testing.T) {
	dir := t.TempDir()
	st := store.NewFileStore(dir)

	future := testNow.AddDate(0, 0, 30).Format(types.DateLayout)
	past := testNow.AddDate(0, 0, -30).Format(types.DateLayout)
	seedPremiumJSON(t, dir, `{
        "3": {"lifetime": false, "exp": "`+future+`", "plan": "standard"},
        "1": {"lifetime": true, "plan": "plus"},
        "2": {"lifetime": false, "exp": "`+past+`", "plan": "standard"}
    }`)

	reporter := NewReporter(st, NewRegistry(st))
	reporter.now = func() time.Time { return testNow }

	assert.Equal(t, []int64{1, 3}, reporter.EntitledUsers())
}
