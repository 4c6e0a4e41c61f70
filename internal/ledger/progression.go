package ledger

import (
	"sort"
	"sync"

	"github.com/fortniteiabot/fortnitecoach/store"
)

// levelCutoffs are the exclusive upper bounds of levels 1..7; XP at or
// past the last cutoff is level 8.
var levelCutoffs = [...]int{20, 50, 100, 200, 350, 600, 1000}

var levelNames = [...]string{
	"Casual",
	"Beginner",
	"Intermediate",
	"Competitive",
	"Pre-Pro",
	"Pro",
	"FNCS Elite",
	"God Tier",
}

// LevelOf maps an XP total onto its level and display name. Total over
// all non-negative inputs; there is no error path.
func LevelOf(xp int) (int, string) {
	for i, cutoff := range levelCutoffs {
		if xp < cutoff {
			return i + 1, levelNames[i]
		}
	}
	return len(levelNames), levelNames[len(levelNames)-1]
}

// ProgressionTracker owns the XP record set. XP only ever grows, in
// fixed-size awards decided by the caller.
type ProgressionTracker struct {
	store store.RecordStore
	mu    sync.Mutex
}

func NewProgressionTracker(st store.RecordStore) *ProgressionTracker {
	return &ProgressionTracker{store: st}
}

func (t *ProgressionTracker) records() map[string]int {
	recs := map[string]int{}
	t.store.Load(store.SetXP, &recs)
	return recs
}

// XP returns the user's accumulated XP, zero when unknown.
func (t *ProgressionTracker) XP(userID int64) int {
	return t.records()[userKey(userID)]
}

// Award adds amount to the user's XP, creating the record at zero
// first. Negative amounts are ignored to keep the counter monotonic.
func (t *ProgressionTracker) Award(userID int64, amount int) error {
	if amount <= 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	recs := t.records()
	recs[userKey(userID)] += amount
	return t.store.Save(store.SetXP, recs)
}

// Top returns up to n (userID, xp) pairs ordered by XP descending.
func (t *ProgressionTracker) Top(n int) []UserXP {
	recs := t.records()
	out := make([]UserXP, 0, len(recs))
	for key, xp := range recs {
		out = append(out, UserXP{UserKey: key, XP: xp})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].XP != out[j].XP {
			return out[i].XP > out[j].XP
		}
		return out[i].UserKey < out[j].UserKey
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

type UserXP struct {
	UserKey string
	XP      int
}
