package ledger

import (
	"testing"

	"github.com/fortniteiabot/fortnitecoach/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelBoundaries(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1}, {19, 1},
		{20, 2}, {49, 2},
		{50, 3}, {99, 3},
		{100, 4}, {199, 4},
		{200, 5}, {349, 5},
		{350, 6}, {599, 6},
		{600, 7}, {999, 7},
		{1000, 8}, {50000, 8},
	}
	for _, tc := range cases {
		level, name := LevelOf(tc.xp)
		assert.Equal(t, tc.level, level, "xp=%d", tc.xp)
		assert.NotEmpty(t, name)
	}
}

func TestLevelNames(t *testing.T) {
	_, name := LevelOf(0)
	assert.Equal(t, "Casual", name)

	_, name = LevelOf(1000)
	assert.Equal(t, "God Tier", name)
}

func TestAwardAccumulates(t *testing.T) {
	tr := NewProgressionTracker(store.NewFileStore(t.TempDir()))

	assert.Zero(t, tr.XP(1))

	require.NoError(t, tr.Award(1, 10))
	require.NoError(t, tr.Award(1, 5))
	assert.Equal(t, 15, tr.XP(1))

	// Another user's counter is independent.
	assert.Zero(t, tr.XP(2))
}

func TestAwardIgnoresNonPositive(t *testing.T) {
	tr := NewProgressionTracker(store.NewFileStore(t.TempDir()))

	require.NoError(t, tr.Award(1, 10))
	require.NoError(t, tr.Award(1, 0))
	require.NoError(t, tr.Award(1, -5))

	assert.Equal(t, 10, tr.XP(1))
}

func TestTopOrdersByXP(t *testing.T) {
	tr := NewProgressionTracker(store.NewFileStore(t.TempDir()))

	require.NoError(t, tr.Award(1, 10))
	require.NoError(t, tr.Award(2, 50))
	require.NoError(t, tr.Award(3, 30))

	top := tr.Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, UserXP{UserKey: "2", XP: 50}, top[0])
	assert.Equal(t, UserXP{UserKey: "3", XP: 30}, top[1])
}
