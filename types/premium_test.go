package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalLegacyString(t *testing.T) {
	var records PremiumRecords
	require.NoError(t, json.Unmarshal([]byte(`{"1": "2030-05-01"}`), &records))

	entry := records["1"]
	assert.True(t, entry.Legacy)
	assert.Equal(t, "2030-05-01", entry.Exp)
	assert.False(t, entry.Lifetime)
	assert.Equal(t, PlanStandard, entry.EffectivePlan())
}

func TestUnmarshalStructured(t *testing.T) {
	var records PremiumRecords
	raw := `{"2": {"lifetime": false, "exp": "2030-05-01", "plan": "plus"}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &records))

	entry := records["2"]
	assert.False(t, entry.Legacy)
	assert.Equal(t, PlanPlus, entry.Plan)
}

func TestMarshalPreservesLegacyForm(t *testing.T) {
	records := PremiumRecords{
		"1": {Exp: "2030-05-01", Legacy: true},
		"2": {Lifetime: true, Plan: PlanPlus},
	}

	data, err := json.Marshal(records)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"1":"2030-05-01"`)
	assert.Contains(t, string(data), `"lifetime":true`)
}

func TestMigrateClearsLegacyAndAdoptsPlan(t *testing.T) {
	entry := PremiumEntry{Exp: "2030-05-01", Legacy: true}
	entry.Migrate(PlanStandard)

	assert.False(t, entry.Legacy)
	assert.Equal(t, PlanStandard, entry.Plan)

	// An existing plan survives migration.
	entry = PremiumEntry{Exp: "2030-05-01", Plan: PlanPlus}
	entry.Migrate(PlanStandard)
	assert.Equal(t, PlanPlus, entry.Plan)
}

func TestExpirationTime(t *testing.T) {
	entry := PremiumEntry{Exp: "2030-05-01"}
	exp, ok := entry.ExpirationTime()
	require.True(t, ok)
	assert.Equal(t, time.Date(2030, 5, 1, 0, 0, 0, 0, time.Local), exp)

	_, ok = PremiumEntry{}.ExpirationTime()
	assert.False(t, ok)

	_, ok = PremiumEntry{Exp: "garbage"}.ExpirationTime()
	assert.False(t, ok)
}

func TestActive(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	assert.True(t, PremiumEntry{Lifetime: true}.Active(now))
	assert.True(t, PremiumEntry{Exp: "2030-01-01"}.Active(now))
	assert.False(t, PremiumEntry{Exp: "2020-01-01"}.Active(now))
	assert.False(t, PremiumEntry{Exp: "garbage"}.Active(now))
	assert.False(t, PremiumEntry{}.Active(now))
}

func TestParsePlan(t *testing.T) {
	assert.Equal(t, PlanPlus, ParsePlan("plus"))
	assert.Equal(t, PlanStandard, ParsePlan("standard"))
	assert.Equal(t, PlanStandard, ParsePlan(""))
	assert.Equal(t, PlanStandard, ParsePlan("vip"))
}
