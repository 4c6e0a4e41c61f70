package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingLeavesDefault(t *testing.T) {
	s := NewFileStore(t.TempDir())

	out := map[string]int{"seed": 1}
	s.Load("nothing_here", &out)

	assert.Equal(t, map[string]int{"seed": 1}, out)
}

func TestLoadCorruptLeavesDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o644))

	s := NewFileStore(dir)
	out := []int64{42}
	s.Load(SetUsers, &out)

	assert.Equal(t, []int64{42}, out)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir())

	in := map[string]int{"100": 25, "200": 5}
	require.NoError(t, s.Save(SetXP, in))

	out := map[string]int{}
	s.Load(SetXP, &out)
	assert.Equal(t, in, out)
}

func TestSaveCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewFileStore(dir)

	require.NoError(t, s.Save(SetUsers, []int64{1}))

	_, err := os.Stat(filepath.Join(dir, SetUsers+".json"))
	assert.NoError(t, err)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	require.NoError(t, s.Save(SetReferrals, map[string]any{}))
	require.NoError(t, s.Save(SetReferrals, map[string]any{"1": nil}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, SetReferrals+".json", entries[0].Name())
}

func TestSaveReplacesWholeSet(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.NoError(t, s.Save(SetXP, map[string]int{"1": 10, "2": 20}))
	require.NoError(t, s.Save(SetXP, map[string]int{"1": 15}))

	out := map[string]int{}
	s.Load(SetXP, &out)
	assert.Equal(t, map[string]int{"1": 15}, out)
}
