package ledger

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/fortniteiabot/fortnitecoach/store"
	"github.com/fortniteiabot/fortnitecoach/types"
)

// userKey formats a user id the way every record set keys it.
func userKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// PremiumManager owns the premium record set. Every operation is a full
// round trip through the store; no record is cached across calls.
// Mutations serialize on the manager mutex to close the read-modify-
// write race the plain last-writer-wins store would otherwise have.
type PremiumManager struct {
	store store.RecordStore
	mu    sync.Mutex
	now   func() time.Time
}

func NewPremiumManager(st store.RecordStore) *PremiumManager {
	return &PremiumManager{store: st, now: time.Now}
}

func (m *PremiumManager) records() types.PremiumRecords {
	recs := types.PremiumRecords{}
	m.store.Load(store.SetPremium, &recs)
	return recs
}

// Entry returns the raw premium record for a user, if any.
func (m *PremiumManager) Entry(userID int64) (types.PremiumEntry, bool) {
	entry, ok := m.records()[userKey(userID)]
	return entry, ok
}

// IsEntitled reports whether the user has premium access right now:
// a lifetime entry, or an unexpired expiration. Absent, expired, and
// unparseable records all read as not entitled; queries never fail.
func (m *PremiumManager) IsEntitled(userID int64) bool {
	entry, ok := m.Entry(userID)
	if !ok {
		return false
	}
	return entry.Active(m.now())
}

// IsPlus reports whether the user's record is in structured form with
// the plus plan. It deliberately does not check expiry; call sites that
// need both conditions combine it with IsEntitled themselves.
func (m *PremiumManager) IsPlus(userID int64) bool {
	entry, ok := m.Entry(userID)
	if !ok || entry.Legacy {
		return false
	}
	return entry.Plan == types.PlanPlus
}

// Describe renders the user's premium status for display.
func (m *PremiumManager) Describe(userID int64) string {
	entry, ok := m.Entry(userID)
	if !ok {
		return "Not premium."
	}
	plan := planDisplay(entry.EffectivePlan())
	if !entry.Legacy && entry.Lifetime {
		return fmt.Sprintf("Premium %s for life 🏆", plan)
	}
	return fmt.Sprintf("Premium %s active until: %s", plan, entry.Exp)
}

// Grant creates or extends a non-lifetime entitlement by the given
// number of days. Extension counts from the later of the current
// expiration and now, so granting on an expired entry does not credit
// the stale gap. A lifetime entry is never touched. The write upgrades
// a legacy record to structured form; an unparseable stored date falls
// back to now as the extension base.
func (m *PremiumManager) Grant(userID int64, days int, plan types.PlanTier) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	recs := m.records()
	key := userKey(userID)
	now := m.now()

	entry, ok := recs[key]
	if ok && !entry.Legacy && entry.Lifetime {
		return nil
	}

	if !ok {
		entry = types.PremiumEntry{
			Plan: plan,
			Exp:  now.AddDate(0, 0, days).Format(types.DateLayout),
		}
	} else {
		base := now
		if exp, valid := entry.ExpirationTime(); valid && exp.After(base) {
			base = exp
		}
		entry.Exp = base.AddDate(0, 0, days).Format(types.DateLayout)
		entry.Migrate(plan)
	}

	recs[key] = entry
	return m.store.Save(store.SetPremium, recs)
}

// GrantLifetime replaces the user's record with a permanent entitlement
// under the given plan. There is no revoke operation.
func (m *PremiumManager) GrantLifetime(userID int64, plan types.PlanTier) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	recs := m.records()
	recs[userKey(userID)] = types.PremiumEntry{
		Lifetime: true,
		Plan:     plan,
	}
	return m.store.Save(store.SetPremium, recs)
}

func planDisplay(p types.PlanTier) string {
	if p == types.PlanPlus {
		return "Plus"
	}
	return "Standard"
}
