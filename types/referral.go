package types

// ReferralRecord is one user's node in the referral graph. User ids are
// stored as text, matching the record-set keys.
type ReferralRecord struct {
	// ReferredBy is set at most once and never overwritten.
	ReferredBy string `json:"referred_by,omitempty"`
	// Referred lists the users this user directly recruited.
	Referred []string `json:"referred"`
	// BonusGranted lists referred users whose activation already
	// credited this user, so a pair is rewarded at most once.
	BonusGranted []string `json:"bonus_granted"`
}

// HasReferred reports whether id is already in the referred list.
func (r ReferralRecord) HasReferred(id string) bool {
	for _, u := range r.Referred {
		if u == id {
			return true
		}
	}
	return false
}

// BonusGrantedFor reports whether the bonus for id was already issued.
func (r ReferralRecord) BonusGrantedFor(id string) bool {
	for _, u := range r.BonusGranted {
		if u == id {
			return true
		}
	}
	return false
}

// ReferralRecords is the full referral record set, keyed by user id as
// text.
type ReferralRecords map[string]ReferralRecord
