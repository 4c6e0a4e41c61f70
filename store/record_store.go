package store

import "errors"

// Record set names. Each is an independently keyed mapping from user id
// (as text) to its record shape.
const (
	SetPremium   = "premium_users"
	SetUsers     = "users"
	SetXP        = "xp_users"
	SetReferrals = "referrals"
)

// ErrStoreUnavailable wraps persistence failures. Mutating callers must
// surface it so an administrative caller can retry; a silently dropped
// grant would be a correctness bug.
var ErrStoreUnavailable = errors.New("record store unavailable")

// RecordStore persists whole record sets. There is no cross-key
// transaction and no locking: Save replaces the full set and concurrent
// writers are last-writer-wins. Serializing read-modify-write cycles is
// the caller's job.
type RecordStore interface {
	// Load fills out with the persisted record set. A missing,
	// unreadable, or malformed set leaves out untouched, so the
	// caller's zero value serves as the default. Load never fails.
	Load(name string, out any)

	// Save durably replaces the full record set. A partially written
	// set must never clobber the previous one on crash.
	Save(name string, v any) error
}
