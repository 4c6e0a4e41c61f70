package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fortniteiabot/fortnitecoach/store"
	"github.com/fortniteiabot/fortnitecoach/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

func newTestPremium(t *testing.T) (*PremiumManager, string) {
	t.Helper()
	dir := t.TempDir()
	m := NewPremiumManager(store.NewFileStore(dir))
	m.now = func() time.Time { return testNow }
	return m, dir
}

func seedPremiumJSON(t *testing.T, dir, raw string) {
	t.Helper()
	path := filepath.Join(dir, store.SetPremium+".json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
}

func TestIsEntitledFreshUser(t *testing.T) {
	m, _ := newTestPremium(t)

	assert.False(t, m.IsEntitled(42))

	require.NoError(t, m.Grant(42, 30, types.PlanStandard))
	assert.True(t, m.IsEntitled(42))

	entry, ok := m.Entry(42)
	require.True(t, ok)
	assert.Equal(t, testNow.AddDate(0, 0, 30).Format(types.DateLayout), entry.Exp)
	assert.False(t, entry.Lifetime)
	assert.Equal(t, types.PlanStandard, entry.Plan)
}

func TestGrantTwiceEqualsDoubleGrant(t *testing.T) {
	m, _ := newTestPremium(t)

	require.NoError(t, m.Grant(1, 7, types.PlanStandard))
	require.NoError(t, m.Grant(1, 7, types.PlanStandard))

	entry, ok := m.Entry(1)
	require.True(t, ok)
	assert.Equal(t, testNow.AddDate(0, 0, 14).Format(types.DateLayout), entry.Exp)
}

func TestGrantOnExpiredCountsFromNow(t *testing.T) {
	m, dir := newTestPremium(t)
	stale := testNow.AddDate(0, 0, -10).Format(types.DateLayout)
	seedPremiumJSON(t, dir, `{"5": {"lifetime": false, "exp": "`+stale+`", "plan": "standard"}}`)

	assert.False(t, m.IsEntitled(5))

	require.NoError(t, m.Grant(5, 7, types.PlanStandard))
	entry, ok := m.Entry(5)
	require.True(t, ok)
	assert.Equal(t, testNow.AddDate(0, 0, 7).Format(types.DateLayout), entry.Exp)
	assert.True(t, m.IsEntitled(5))
}

func TestGrantPreservesExistingPlan(t *testing.T) {
	m, _ := newTestPremium(t)

	require.NoError(t, m.Grant(9, 7, types.PlanPlus))
	require.NoError(t, m.Grant(9, 7, types.PlanStandard))

	entry, ok := m.Entry(9)
	require.True(t, ok)
	assert.Equal(t, types.PlanPlus, entry.Plan)
}

func TestLifetimeGrantIsTerminal(t *testing.T) {
	m, _ := newTestPremium(t)

	require.NoError(t, m.GrantLifetime(7, types.PlanPlus))
	assert.True(t, m.IsEntitled(7))
	assert.True(t, m.IsPlus(7))

	require.NoError(t, m.Grant(7, 365, types.PlanStandard))

	entry, ok := m.Entry(7)
	require.True(t, ok)
	assert.True(t, entry.Lifetime)
	assert.Empty(t, entry.Exp)
	assert.Equal(t, types.PlanPlus, entry.Plan)
}

func TestLegacyEntryReadAndUpgrade(t *testing.T) {
	m, dir := newTestPremium(t)
	seedPremiumJSON(t, dir, `{"1": "2099-01-01", "2": "2099-06-01"}`)

	assert.True(t, m.IsEntitled(1))
	assert.False(t, m.IsPlus(1), "legacy entries are never plus")
	assert.Contains(t, m.Describe(1), "2099-01-01")
	assert.Contains(t, m.Describe(1), "Standard")

	// Mutation upgrades the touched entry, extending from the legacy
	// expiration baseline.
	require.NoError(t, m.Grant(1, 7, types.PlanStandard))
	entry, ok := m.Entry(1)
	require.True(t, ok)
	assert.False(t, entry.Legacy)
	assert.Equal(t, "2099-01-08", entry.Exp)
	assert.Equal(t, types.PlanStandard, entry.Plan)

	// The untouched legacy entry survives the rewrite as a bare string.
	data, err := os.ReadFile(filepath.Join(dir, store.SetPremium+".json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"2099-06-01"`)
	assert.NotContains(t, string(data), `"2099-01-01"`)
}

func TestMalformedExpirationFallsBackToNow(t *testing.T) {
	m, dir := newTestPremium(t)
	seedPremiumJSON(t, dir, `{"3": {"lifetime": false, "exp": "not-a-date", "plan": "plus"}}`)

	assert.False(t, m.IsEntitled(3))

	require.NoError(t, m.Grant(3, 7, types.PlanStandard))
	entry, ok := m.Entry(3)
	require.True(t, ok)
	assert.Equal(t, testNow.AddDate(0, 0, 7).Format(types.DateLayout), entry.Exp)
	assert.True(t, m.IsEntitled(3))
}

func TestIsPlusIgnoresExpiry(t *testing.T) {
	m, dir := newTestPremium(t)
	stale := testNow.AddDate(0, 0, -30).Format(types.DateLayout)
	seedPremiumJSON(t, dir, `{"4": {"lifetime": false, "exp": "`+stale+`", "plan": "plus"}}`)

	assert.True(t, m.IsPlus(4))
	assert.False(t, m.IsEntitled(4))
}

func TestExpiresOnExpirationDay(t *testing.T) {
	m, dir := newTestPremium(t)
	today := testNow.Format(types.DateLayout)
	seedPremiumJSON(t, dir, `{"6": {"lifetime": false, "exp": "`+today+`", "plan": "standard"}}`)

	// The stored date marks midnight, so by midday the entry is stale.
	assert.False(t, m.IsEntitled(6))
}

func TestDescribe(t *testing.T) {
	m, _ := newTestPremium(t)

	assert.Equal(t, "Not premium.", m.Describe(100))

	require.NoError(t, m.GrantLifetime(100, types.PlanPlus))
	assert.Contains(t, m.Describe(100), "Plus")
	assert.Contains(t, m.Describe(100), "for life")

	require.NoError(t, m.Grant(101, 30, types.PlanStandard))
	desc := m.Describe(101)
	assert.Contains(t, desc, "Standard")
	assert.Contains(t, desc, testNow.AddDate(0, 0, 30).Format(types.DateLayout))
}

func TestEntryWithoutExpirationNotEntitled(t *testing.T) {
	m, dir := newTestPremium(t)
	seedPremiumJSON(t, dir, `{"8": {"lifetime": false, "plan": "standard"}}`)

	assert.False(t, m.IsEntitled(8))
}
