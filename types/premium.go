package types

import (
	"bytes"
	"encoding/json"
	"time"
)

// DateLayout is the persisted form of every expiration date.
const DateLayout = "2006-01-02"

type PlanTier string

const (
	PlanStandard PlanTier = "standard"
	PlanPlus     PlanTier = "plus"
)

// ParsePlan normalizes a stored plan value. Anything unknown, including
// the empty string of pre-plan records, reads as standard.
func ParsePlan(s string) PlanTier {
	if PlanTier(s) == PlanPlus {
		return PlanPlus
	}
	return PlanStandard
}

// PremiumEntry is the per-user premium record. Two persisted forms
// exist: the structured object and a legacy bare date string meaning a
// standard, non-lifetime entitlement expiring on that date. Legacy
// entries unmarshal with Legacy=true and marshal back to the bare
// string until Migrate is called, so rewriting the record set does not
// upgrade entries the mutation never touched.
type PremiumEntry struct {
	Lifetime bool     `json:"lifetime"`
	Exp      string   `json:"exp,omitempty"`
	Plan     PlanTier `json:"plan,omitempty"`

	Legacy bool `json:"-"`
}

type premiumEntryJSON PremiumEntry

func (e *PremiumEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var exp string
		if err := json.Unmarshal(data, &exp); err != nil {
			return err
		}
		*e = PremiumEntry{Exp: exp, Legacy: true}
		return nil
	}
	var v premiumEntryJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = PremiumEntry(v)
	return nil
}

func (e PremiumEntry) MarshalJSON() ([]byte, error) {
	if e.Legacy {
		return json.Marshal(e.Exp)
	}
	return json.Marshal(premiumEntryJSON(e))
}

// Migrate upgrades a legacy entry to the structured form, adopting plan
// for entries that have none. It is the single migration point: every
// mutating access goes through it before persisting.
func (e *PremiumEntry) Migrate(plan PlanTier) {
	if e.Legacy {
		e.Legacy = false
	}
	if e.Plan == "" {
		e.Plan = plan
	}
}

// ExpirationTime parses the stored expiration. ok is false when the
// date is absent or malformed; malformed dates are a documented
// degrade-to-expired case, never an error.
func (e PremiumEntry) ExpirationTime() (time.Time, bool) {
	if e.Exp == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, e.Exp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EffectivePlan is the plan a record grants access under: legacy
// records imply standard.
func (e PremiumEntry) EffectivePlan() PlanTier {
	if e.Legacy {
		return PlanStandard
	}
	return ParsePlan(string(e.Plan))
}

// Active reports whether the entry grants access at the given instant.
func (e PremiumEntry) Active(now time.Time) bool {
	if !e.Legacy && e.Lifetime {
		return true
	}
	exp, ok := e.ExpirationTime()
	if !ok {
		return false
	}
	return !exp.Before(now)
}

// PremiumRecords is the full premium record set, keyed by user id as
// text.
type PremiumRecords map[string]PremiumEntry
