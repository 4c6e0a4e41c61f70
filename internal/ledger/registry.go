package ledger

import (
	"sync"

	"github.com/fortniteiabot/fortnitecoach/store"
)

// Registry tracks every user id that ever talked to the bot, for
// reporting and broadcasts.
type Registry struct {
	store store.RecordStore
	mu    sync.Mutex
}

func NewRegistry(st store.RecordStore) *Registry {
	return &Registry{store: st}
}

func (r *Registry) all() []int64 {
	var ids []int64
	r.store.Load(store.SetUsers, &ids)
	return ids
}

// Register records a user id. Persists only when the id is new.
func (r *Registry) Register(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.all()
	for _, id := range ids {
		if id == userID {
			return nil
		}
	}
	ids = append(ids, userID)
	return r.store.Save(store.SetUsers, ids)
}

// All returns every registered user id.
func (r *Registry) All() []int64 {
	return r.all()
}

// Count returns the number of registered users.
func (r *Registry) Count() int {
	return len(r.all())
}
