package ledger

import (
	"sort"
	"strconv"
	"time"

	"github.com/fortniteiabot/fortnitecoach/store"
	"github.com/fortniteiabot/fortnitecoach/types"
)

// Summary is the operational snapshot served to the admin stats
// command. Lifetime entries count both in ActiveLifetime and in their
// plan bucket.
type Summary struct {
	TotalUsers     int
	ActiveStandard int
	ActivePlus     int
	ActiveLifetime int
	TrackedXP      int
}

// PremiumStatus is one classified row of the premium listing.
type PremiumStatus struct {
	UserKey  string
	Plan     types.PlanTier
	Lifetime bool
	Exp      string
	Active   bool
}

// Reporter aggregates read-only views over the record sets. It applies
// the same classification rules as the premium manager, legacy string
// entries included.
type Reporter struct {
	store    store.RecordStore
	registry *Registry
	now      func() time.Time
}

func NewReporter(st store.RecordStore, registry *Registry) *Reporter {
	return &Reporter{store: st, registry: registry, now: time.Now}
}

func (r *Reporter) premiumRecords() types.PremiumRecords {
	recs := types.PremiumRecords{}
	r.store.Load(store.SetPremium, &recs)
	return recs
}

func (r *Reporter) Summary() Summary {
	now := r.now()
	s := Summary{TotalUsers: r.registry.Count()}

	for _, entry := range r.premiumRecords() {
		if entry.Legacy {
			if entry.Active(now) {
				s.ActiveStandard++
			}
			continue
		}
		if entry.Lifetime {
			s.ActiveLifetime++
			if entry.Plan == types.PlanPlus {
				s.ActivePlus++
			} else {
				s.ActiveStandard++
			}
			continue
		}
		if entry.Active(now) {
			if entry.Plan == types.PlanPlus {
				s.ActivePlus++
			} else {
				s.ActiveStandard++
			}
		}
	}

	xp := map[string]int{}
	r.store.Load(store.SetXP, &xp)
	s.TrackedXP = len(xp)

	return s
}

// PremiumEntries lists every premium record with its classification,
// ordered by user key for stable output.
func (r *Reporter) PremiumEntries() []PremiumStatus {
	now := r.now()
	recs := r.premiumRecords()

	out := make([]PremiumStatus, 0, len(recs))
	for key, entry := range recs {
		out = append(out, PremiumStatus{
			UserKey:  key,
			Plan:     entry.EffectivePlan(),
			Lifetime: !entry.Legacy && entry.Lifetime,
			Exp:      entry.Exp,
			Active:   entry.Active(now),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserKey < out[j].UserKey })
	return out
}

// EntitledUsers returns the ids of every currently entitled user,
// lifetime holders included.
func (r *Reporter) EntitledUsers() []int64 {
	now := r.now()
	var ids []int64
	for key, entry := range r.premiumRecords() {
		if !entry.Active(now) {
			continue
		}
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
